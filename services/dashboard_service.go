// services/dashboard_service.go - Read-only aggregations for display
package services

import (
	"time"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

// DashboardState is the aggregation the dashboard view renders.
type DashboardState struct {
	Profile         models.UserProfile      `json:"profile"`
	ActiveQuests    []models.Quest          `json:"active_quests"`
	CompletedQuests []models.Quest          `json:"completed_quests"`
	Stats           map[models.StatType]int `json:"stats"`
	EquippedItems   []models.InventoryItem  `json:"equipped_items"`
	Achievements    []AchievementStatus     `json:"achievements"`
	DailyCompleted  int                     `json:"daily_completed"`
	DailyLimit      int                     `json:"daily_limit"`
	XPToNextLevel   int                     `json:"xp_to_next_level"`
	XPProgress      float64                 `json:"xp_progress"`
}

// Dashboard assembles the user's current progression snapshot.
func (s *Service) Dashboard(userID uint) (*DashboardState, error) {
	var profile models.UserProfile
	if err := s.db.Preload("Inventory").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, ErrProfileNotFound
	}

	var active []models.Quest
	if err := s.db.Where("user_id = ? AND status = ?", userID, models.QuestInProgress).
		Order("deadline ASC").Find(&active).Error; err != nil {
		return nil, err
	}

	var completed []models.Quest
	if err := s.db.Where("user_id = ? AND status = ?", userID, models.QuestCompleted).
		Order("completed_at DESC").Limit(20).Find(&completed).Error; err != nil {
		return nil, err
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var dailyCompleted int64
	if err := s.db.Model(&models.Quest{}).
		Where("user_id = ? AND status = ? AND completed_at >= ?", userID, models.QuestCompleted, dayStart).
		Count(&dailyCompleted).Error; err != nil {
		return nil, err
	}

	achievements, err := s.ListAchievements(userID)
	if err != nil {
		return nil, err
	}

	return &DashboardState{
		Profile:         profile,
		ActiveQuests:    active,
		CompletedQuests: completed,
		Stats:           TotalStats(&profile),
		EquippedItems:   EquippedItems(&profile),
		Achievements:    achievements,
		DailyCompleted:  int(dailyCompleted),
		DailyLimit:      profile.DailyQuestLimit,
		XPToNextLevel:   XPToNextLevel(profile.Level),
		XPProgress:      XPProgress(&profile),
	}, nil
}

// ProfileWithInventory loads the profile and its inventory.
func (s *Service) ProfileWithInventory(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.Preload("Inventory").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, ErrProfileNotFound
	}
	return &profile, nil
}

// UpdateProfileName renames the hunter.
func (s *Service) UpdateProfileName(userID uint, name string) (*models.UserProfile, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	profile, err := profileForUser(s.db, userID)
	if err != nil {
		return nil, err
	}
	profile.Name = name
	if err := s.db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
