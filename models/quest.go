// models/quest.go
package models

import (
	"time"
)

// QuestStatus is the quest lifecycle state. Transitions are one-directional;
// completed and failed are both terminal.
type QuestStatus string

const (
	QuestNotStarted QuestStatus = "not_started"
	QuestInProgress QuestStatus = "in_progress"
	QuestCompleted  QuestStatus = "completed"
	QuestFailed     QuestStatus = "failed"
)

// QuestType maps a quest to the attribute it trains, or "general".
type QuestType string

const QuestGeneral QuestType = "general"

const (
	DifficultyTrivial   = 1
	DifficultyEasy      = 2
	DifficultyHard      = 3
	DifficultyExtreme   = 4
	DifficultyNightmare = 5
)

type Quest struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uint        `gorm:"not null;index" json:"user_id"`
	GoalID        *uint       `gorm:"index" json:"goal_id,omitempty"`
	Title         string      `gorm:"size:200;not null" json:"title"`
	Description   string      `gorm:"type:text" json:"description"`
	QuestType     QuestType   `gorm:"size:20;default:'general'" json:"quest_type"`
	Difficulty    int         `gorm:"default:1" json:"difficulty"`
	RewardXP      int         `gorm:"default:0" json:"reward_xp"`
	RewardCoins   int         `gorm:"default:0" json:"reward_coins"`
	RequiredLevel int         `gorm:"default:1" json:"required_level"`
	Deadline      *time.Time  `json:"deadline,omitempty"`
	Status        QuestStatus `gorm:"size:20;default:'not_started';index" json:"status"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Goal *Goal `gorm:"foreignKey:GoalID" json:"goal,omitempty"`
}

// StatTrained resolves the profile attribute this quest trains, false for
// general quests.
func (q *Quest) StatTrained() (StatType, bool) {
	st := StatType(q.QuestType)
	if st.IsValid() {
		return st, true
	}
	return "", false
}

func (q *Quest) IsTerminal() bool {
	return q.Status == QuestCompleted || q.Status == QuestFailed
}

func (Quest) TableName() string {
	return "quests"
}
