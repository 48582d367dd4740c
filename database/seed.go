// database/seed.go - Catalog seed data (shop items, achievements)
package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

func statPtr(s models.StatType) *models.StatType {
	return &s
}

var shopCatalog = []models.ShopItem{
	{
		Name:         "Training Weights",
		Description:  "Ancient weighted training gear that increases strength",
		Price:        100,
		Rarity:       models.RarityCommon,
		ItemType:     "EQUIPMENT",
		Category:     "health",
		StatType:     statPtr(models.StatStrength),
		StatIncrease: 2,
		Icon:         "dumbbell",
	},
	{
		Name:         "Swift Runner's Boots",
		Description:  "Enchanted boots that enhance agility",
		Price:        200,
		Rarity:       models.RarityUncommon,
		ItemType:     "EQUIPMENT",
		Category:     "health",
		StatType:     statPtr(models.StatAgility),
		StatIncrease: 3,
		Icon:         "running",
	},
	{
		Name:         "Ancient Tome of Knowledge",
		Description:  "A mystical book that greatly increases intelligence",
		Price:        500,
		Rarity:       models.RarityEpic,
		ItemType:     "CONSUMABLE",
		Category:     "education",
		StatType:     statPtr(models.StatIntelligence),
		StatIncrease: 5,
		Icon:         "book",
	},
	{
		Name:         "Professional's Monocle",
		Description:  "Enhances perception and analytical abilities",
		Price:        300,
		Rarity:       models.RarityRare,
		ItemType:     "EQUIPMENT",
		Category:     "career",
		StatType:     statPtr(models.StatSense),
		StatIncrease: 4,
		Icon:         "glasses",
	},
	{
		Name:         "Heart of the Warrior",
		Description:  "A legendary artifact that significantly boosts vitality",
		Price:        1000,
		Rarity:       models.RarityLegendary,
		ItemType:     "EQUIPMENT",
		Category:     "personal",
		StatType:     statPtr(models.StatVitality),
		StatIncrease: 7,
		Icon:         "heart",
	},
	{
		Name:         "Artist's Inspiration",
		Description:  "Enhances creative thinking and intelligence",
		Price:        250,
		Rarity:       models.RarityUncommon,
		ItemType:     "CONSUMABLE",
		Category:     "creative",
		StatType:     statPtr(models.StatIntelligence),
		StatIncrease: 3,
		Icon:         "paint-brush",
	},
	{
		Name:         "Charm of Charisma",
		Description:  "Boosts social awareness and perception",
		Price:        400,
		Rarity:       models.RarityRare,
		ItemType:     "EQUIPMENT",
		Category:     "social",
		StatType:     statPtr(models.StatSense),
		StatIncrease: 4,
		Icon:         "comments",
	},
	{
		Name:         "Merchant's Wisdom",
		Description:  "Increases intelligence for better financial decisions",
		Price:        350,
		Rarity:       models.RarityRare,
		ItemType:     "CONSUMABLE",
		Category:     "financial",
		StatType:     statPtr(models.StatIntelligence),
		StatIncrease: 4,
		Icon:         "chart-line",
	},
	{
		Name:         "Olympian's Belt",
		Description:  "A powerful artifact that enhances both strength and agility",
		Price:        800,
		Rarity:       models.RarityEpic,
		ItemType:     "EQUIPMENT",
		Category:     "health",
		StatType:     statPtr(models.StatStrength),
		StatIncrease: 6,
		Icon:         "medal",
	},
	{
		Name:         "Soul Crystal",
		Description:  "A mystical crystal that enhances overall vitality",
		Price:        600,
		Rarity:       models.RarityEpic,
		ItemType:     "EQUIPMENT",
		Category:     "personal",
		StatType:     statPtr(models.StatVitality),
		StatIncrease: 5,
		Icon:         "gem",
	},
}

// Achievement tiers: cumulative completed quests, rewarding 10x XP and 5x
// coins per required quest.
var achievementCatalog = []models.Achievement{
	{Name: "Novice Hunter", Description: "Completed 10 quests", RequiredValue: 10, XPReward: 100, CoinReward: 50, Icon: "shield"},
	{Name: "Expert Hunter", Description: "Completed 50 quests", RequiredValue: 50, XPReward: 500, CoinReward: 250, Icon: "swords"},
	{Name: "Master Hunter", Description: "Completed 100 quests", RequiredValue: 100, XPReward: 1000, CoinReward: 500, Icon: "crown"},
	{Name: "Shadow Monarch", Description: "Completed 500 quests", RequiredValue: 500, XPReward: 5000, CoinReward: 2500, Icon: "throne"},
}

// SeedCatalog inserts the shop and achievement catalogs if missing. Seeding
// is idempotent; existing rows are left untouched so owned item snapshots
// stay consistent with what players saw at purchase time.
func SeedCatalog(db *gorm.DB) error {
	seeded := 0
	for _, item := range shopCatalog {
		var existing models.ShopItem
		err := db.Where("name = ?", item.Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&item).Error; err != nil {
				return err
			}
			seeded++
			continue
		}
		if err != nil {
			return err
		}
	}

	for _, ach := range achievementCatalog {
		var existing models.Achievement
		err := db.Where("name = ?", ach.Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&ach).Error; err != nil {
				return err
			}
			seeded++
			continue
		}
		if err != nil {
			return err
		}
	}

	if seeded > 0 {
		log.Printf("✅ Seeded %d catalog rows", seeded)
	}
	return nil
}
