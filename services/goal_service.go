// services/goal_service.go - Goals and completion rollup
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

// GoalDetail is the read model for one goal: the goal, its quests and the
// derived completion percentage. The percentage is never stored.
type GoalDetail struct {
	Goal                 models.Goal    `json:"goal"`
	Quests               []models.Quest `json:"quests"`
	CompletionPercentage int            `json:"completion_percentage"`
	IsCompleted          bool           `json:"is_completed"`
}

// CompletionPercentage is floor(100 * completed / total), 0 for a goal with
// no quests.
func CompletionPercentage(quests []models.Quest) int {
	if len(quests) == 0 {
		return 0
	}
	completed := 0
	for _, q := range quests {
		if q.Status == models.QuestCompleted {
			completed++
		}
	}
	return completed * 100 / len(quests)
}

// normalizeGoal clamps priority to 1-5 and falls unknown categories back to
// productivity. Applied on every write so the suggestion templates always
// find the category.
func normalizeGoal(goal *models.Goal) {
	if goal.Priority < 1 {
		goal.Priority = 1
	}
	if goal.Priority > 5 {
		goal.Priority = 5
	}
	switch goal.Category {
	case models.GoalProductivity, models.GoalLearning, models.GoalFitness, models.GoalCreativity:
	default:
		goal.Category = models.GoalProductivity
	}
}

// CreateGoal stores a goal for the user.
func (s *Service) CreateGoal(userID uint, goal *models.Goal) error {
	goal.UserID = userID
	goal.IsActive = true
	normalizeGoal(goal)
	return s.db.Create(goal).Error
}

// ListGoals returns the user's goals with quests preloaded so callers can
// derive completion, active first then nearest deadline.
func (s *Service) ListGoals(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.Preload("Quests").
		Where("user_id = ?", userID).
		Order("is_active DESC, deadline ASC").
		Find(&goals).Error
	return goals, err
}

// GoalDetail loads one goal with its quests and the derived rollup.
func (s *Service) GoalDetail(userID, goalID uint) (*GoalDetail, error) {
	var goal models.Goal
	err := s.db.Preload("Quests").Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	pct := CompletionPercentage(goal.Quests)
	return &GoalDetail{
		Goal:                 goal,
		Quests:               goal.Quests,
		CompletionPercentage: pct,
		IsCompleted:          pct == 100,
	}, nil
}

// UpdateGoal applies caller edits to an owned goal.
func (s *Service) UpdateGoal(userID uint, goal *models.Goal) error {
	var existing models.Goal
	err := s.db.Where("id = ? AND user_id = ?", goal.ID, userID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrGoalNotFound
	}
	if err != nil {
		return err
	}

	existing.Title = goal.Title
	existing.Description = goal.Description
	existing.Category = goal.Category
	existing.Deadline = goal.Deadline
	existing.IsActive = goal.IsActive
	existing.Priority = goal.Priority
	normalizeGoal(&existing)
	*goal = existing
	return s.db.Save(&existing).Error
}

// DeleteGoal removes the goal; its quests survive detached.
func (s *Service) DeleteGoal(userID, goalID uint) error {
	var goal models.Goal
	err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrGoalNotFound
	}
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Quest{}).
			Where("goal_id = ?", goalID).
			Update("goal_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&goal).Error
	})
}
