// services/service.go - Core service wiring and shared errors
package services

import (
	"errors"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

var (
	ErrQuestNotFound     = errors.New("quest not found")
	ErrGoalNotFound      = errors.New("goal not found")
	ErrItemNotFound      = errors.New("shop item not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrPostNotFound      = errors.New("post not found")
	ErrInventoryNotFound = errors.New("inventory item not found")
)

// Service is the progression core. All profile mutations go through it so
// per-user serialization and transaction boundaries live in one place.
type Service struct {
	db        *gorm.DB
	hub       *Hub
	locks     *userLocks
	suggester QuestSuggester
	luck      LuckRoll
	now       func() time.Time
}

func New(db *gorm.DB) *Service {
	return &Service{
		db:        db,
		hub:       NewHub(),
		locks:     newUserLocks(),
		suggester: NewTemplateSuggester(rand.Int63()),
		luck:      rand.Float64,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Hub exposes the progression event hub for the websocket feed.
func (s *Service) Hub() *Hub {
	return s.hub
}

// SetSuggester swaps the quest suggestion provider.
func (s *Service) SetSuggester(qs QuestSuggester) {
	if qs != nil {
		s.suggester = qs
	}
}
