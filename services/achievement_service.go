// services/achievement_service.go - Threshold achievements
package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

// applyAchievements records the user's progress against every achievement
// and unlocks the ones whose threshold was just reached, applying their
// rewards to the profile. An achievement unlocks exactly once; its
// unlocked_at is never overwritten. Runs inside the caller's transaction.
func applyAchievements(tx *gorm.DB, profile *models.UserProfile, completedQuests int, now time.Time) ([]models.Achievement, error) {
	var catalog []models.Achievement
	if err := tx.Order("required_value ASC").Find(&catalog).Error; err != nil {
		return nil, err
	}

	var records []models.UserAchievement
	if err := tx.Where("user_id = ?", profile.UserID).Find(&records).Error; err != nil {
		return nil, err
	}
	byAchievement := make(map[uint]*models.UserAchievement, len(records))
	for i := range records {
		byAchievement[records[i].AchievementID] = &records[i]
	}

	var unlocked []models.Achievement
	for _, ach := range catalog {
		record, ok := byAchievement[ach.ID]
		if !ok {
			record = &models.UserAchievement{
				UserID:        profile.UserID,
				AchievementID: ach.ID,
			}
		}
		if record.Unlocked() {
			continue
		}

		record.Progress = completedQuests
		if record.Progress > ach.RequiredValue {
			record.Progress = ach.RequiredValue
		}

		if completedQuests >= ach.RequiredValue {
			t := now
			record.UnlockedAt = &t
			AddExperience(profile, ach.XPReward)
			profile.Coins += ach.CoinReward
			unlocked = append(unlocked, ach)
		}

		if err := tx.Save(record).Error; err != nil {
			return nil, err
		}
	}
	return unlocked, nil
}

// AchievementStatus pairs a catalog achievement with the user's progress.
type AchievementStatus struct {
	Achievement models.Achievement `json:"achievement"`
	Progress    int                `json:"progress"`
	Unlocked    bool               `json:"unlocked"`
	UnlockedAt  *time.Time         `json:"unlocked_at,omitempty"`
}

// ListAchievements returns the whole catalog annotated with the user's
// progress, locked entries included.
func (s *Service) ListAchievements(userID uint) ([]AchievementStatus, error) {
	var catalog []models.Achievement
	if err := s.db.Order("required_value ASC").Find(&catalog).Error; err != nil {
		return nil, err
	}

	var records []models.UserAchievement
	if err := s.db.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, err
	}
	byAchievement := make(map[uint]models.UserAchievement, len(records))
	for _, r := range records {
		byAchievement[r.AchievementID] = r
	}

	statuses := make([]AchievementStatus, 0, len(catalog))
	for _, ach := range catalog {
		status := AchievementStatus{Achievement: ach}
		if r, ok := byAchievement[ach.ID]; ok {
			status.Progress = r.Progress
			status.Unlocked = r.Unlocked()
			status.UnlockedAt = r.UnlockedAt
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
