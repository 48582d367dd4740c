// models/shop.go
package models

import (
	"time"
)

// Rarity is ordinal: common < uncommon < rare < epic < legendary.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

var rarityOrder = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
}

// Order returns the rarity's position in the ordinal scale, -1 if unknown.
func (r Rarity) Order() int {
	if o, ok := rarityOrder[r]; ok {
		return o
	}
	return -1
}

// ShopItem is a catalog entity. It is seeded at migration time and read-only
// from the application's perspective.
type ShopItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        int       `gorm:"not null" json:"price"`
	Rarity       Rarity    `gorm:"size:20;default:'common';index" json:"rarity"`
	ItemType     string    `gorm:"size:20" json:"item_type"` // EQUIPMENT, CONSUMABLE
	Category     string    `gorm:"size:20;index" json:"category"`
	StatType     *StatType `gorm:"size:20" json:"stat_type,omitempty"`
	StatIncrease int       `gorm:"default:0" json:"stat_increase"`
	Icon         string    `gorm:"size:50" json:"icon"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ShopItem) TableName() string {
	return "shop_items"
}
