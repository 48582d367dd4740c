// models/profile.go
package models

import (
	"time"
)

// Rank tiers, lowest to highest. Rank is always derived from level.
type Rank string

const (
	RankF Rank = "F"
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

// StatType identifies one of the five hunter attributes.
type StatType string

const (
	StatStrength     StatType = "strength"
	StatAgility      StatType = "agility"
	StatVitality     StatType = "vitality"
	StatSense        StatType = "sense"
	StatIntelligence StatType = "intelligence"
)

// AllStats lists the five attributes in display order.
var AllStats = []StatType{StatStrength, StatAgility, StatVitality, StatSense, StatIntelligence}

func (s StatType) IsValid() bool {
	switch s {
	case StatStrength, StatAgility, StatVitality, StatSense, StatIntelligence:
		return true
	}
	return false
}

type UserProfile struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Name   string `gorm:"size:100" json:"name"`

	// Progression
	Level               int        `gorm:"default:1" json:"level"`
	Experience          int        `gorm:"default:0" json:"experience"`
	Coins               int        `gorm:"default:0" json:"coins"`
	Rank                Rank       `gorm:"size:1;default:'F'" json:"rank"`
	QuestStreak         int        `gorm:"default:0" json:"quest_streak"`
	LastQuestCompletion *time.Time `json:"last_quest_completion,omitempty"`
	DailyQuestLimit     int        `gorm:"default:3" json:"daily_quest_limit"`

	// Base attributes
	Strength     int `gorm:"default:10" json:"strength"`
	Agility      int `gorm:"default:10" json:"agility"`
	Vitality     int `gorm:"default:10" json:"vitality"`
	Sense        int `gorm:"default:10" json:"sense"`
	Intelligence int `gorm:"default:10" json:"intelligence"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Inventory []InventoryItem `gorm:"foreignKey:ProfileID" json:"inventory,omitempty"`
}

// BaseStat reads a base attribute by identifier.
func (p *UserProfile) BaseStat(stat StatType) int {
	switch stat {
	case StatStrength:
		return p.Strength
	case StatAgility:
		return p.Agility
	case StatVitality:
		return p.Vitality
	case StatSense:
		return p.Sense
	case StatIntelligence:
		return p.Intelligence
	}
	return 0
}

// AddStat increments a base attribute by identifier.
func (p *UserProfile) AddStat(stat StatType, amount int) {
	switch stat {
	case StatStrength:
		p.Strength += amount
	case StatAgility:
		p.Agility += amount
	case StatVitality:
		p.Vitality += amount
	case StatSense:
		p.Sense += amount
	case StatIntelligence:
		p.Intelligence += amount
	}
}

// InventoryItem is a snapshot of a shop item at purchase time. Catalog edits
// after the purchase must not change owned items.
type InventoryItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProfileID    uint      `gorm:"not null;index" json:"profile_id"`
	ShopItemID   uint      `gorm:"not null" json:"shop_item_id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	ItemType     string    `gorm:"size:20" json:"item_type"`
	Rarity       Rarity    `gorm:"size:20" json:"rarity"`
	StatType     *StatType `gorm:"size:20" json:"stat_type,omitempty"`
	StatIncrease int       `gorm:"default:0" json:"stat_increase"`
	Icon         string    `gorm:"size:50" json:"icon"`
	Equipped     bool      `gorm:"default:false" json:"equipped"`
	PurchasedAt  time.Time `json:"purchased_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
