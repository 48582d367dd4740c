// services/sweep.go - Overdue quest sweeper
package services

import (
	"log"
	"time"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

// Sweeper periodically fails in_progress quests whose deadline passed.
// Optional; enabled from main via SWEEP_INTERVAL_MINUTES.
type Sweeper struct {
	service  *Service
	interval time.Duration
	stop     chan struct{}
}

func NewSweeper(service *Service, interval time.Duration) *Sweeper {
	return &Sweeper{
		service:  service,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start runs the sweep loop until Stop is called.
func (sw *Sweeper) Start() {
	go func() {
		ticker := time.NewTicker(sw.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := sw.service.FailOverdueQuests()
				if err != nil {
					log.Printf("Overdue quest sweep failed: %v", err)
				} else if n > 0 {
					log.Printf("Marked %d overdue quests as failed", n)
				}
			case <-sw.stop:
				return
			}
		}
	}()
	log.Printf("Overdue quest sweeper running every %s", sw.interval)
}

func (sw *Sweeper) Stop() {
	close(sw.stop)
}

// FailOverdueQuests moves every in_progress quest past its deadline to
// failed. Failure awards nothing, so no profile mutation is involved.
func (s *Service) FailOverdueQuests() (int, error) {
	result := s.db.Model(&models.Quest{}).
		Where("status = ? AND deadline IS NOT NULL AND deadline < ?", models.QuestInProgress, s.now()).
		Update("status", models.QuestFailed)
	return int(result.RowsAffected), result.Error
}
