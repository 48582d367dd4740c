// models/achievement.go
package models

import "time"

type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Icon        string `json:"icon"`

	// Unlock condition: cumulative completed quests.
	RequiredValue int `gorm:"not null" json:"required_value"`

	// Rewards
	XPReward   int `gorm:"default:0" json:"xp_reward"`
	CoinReward int `gorm:"default:0" json:"coin_reward"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserAchievement struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	AchievementID uint       `gorm:"not null;index" json:"achievement_id"`
	Progress      int        `gorm:"default:0" json:"progress"`
	UnlockedAt    *time.Time `json:"unlocked_at,omitempty"` // nil means locked

	// Relationships
	User        User        `gorm:"foreignKey:UserID" json:"-"`
	Achievement Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}

func (ua *UserAchievement) Unlocked() bool {
	return ua.UnlockedAt != nil
}
