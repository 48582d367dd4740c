// models/goal.go
package models

import (
	"time"
)

// GoalCategory buckets a goal for quest suggestion purposes.
type GoalCategory string

const (
	GoalProductivity GoalCategory = "productivity"
	GoalLearning     GoalCategory = "learning"
	GoalFitness      GoalCategory = "fitness"
	GoalCreativity   GoalCategory = "creativity"
)

type Goal struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	UserID      uint         `gorm:"not null;index" json:"user_id"`
	Title       string       `gorm:"size:200;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Category    GoalCategory `gorm:"size:20;default:'productivity'" json:"category"`
	Deadline    *time.Time   `json:"deadline,omitempty"`
	IsActive    bool         `gorm:"default:true" json:"is_active"`
	Priority    int          `gorm:"default:3" json:"priority"` // 1-5

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Quests []Quest `gorm:"foreignKey:GoalID" json:"quests,omitempty"`
}

func (Goal) TableName() string {
	return "goals"
}
