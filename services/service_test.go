package services

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.InventoryItem{},
		&models.Goal{},
		&models.Quest{},
		&models.ShopItem{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.CommunityPost{},
		&models.Comment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	svc := New(db)
	svc.now = func() time.Time { return testNow }
	svc.luck = func() float64 { return 1.0 } // never lucky unless a test overrides
	return svc
}

func createTestUser(t *testing.T, svc *Service, name string) *models.UserProfile {
	t.Helper()

	user := models.User{Username: name, Password: "x"}
	if err := svc.db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	profile := models.UserProfile{
		UserID:          user.ID,
		Name:            name,
		Level:           1,
		Rank:            models.RankF,
		DailyQuestLimit: 3,
		Strength:        10,
		Agility:         10,
		Vitality:        10,
		Sense:           10,
		Intelligence:    10,
	}
	if err := svc.db.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return &profile
}

func reloadProfile(t *testing.T, svc *Service, userID uint) *models.UserProfile {
	t.Helper()

	var profile models.UserProfile
	if err := svc.db.Preload("Inventory").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	return &profile
}

func createTestQuest(t *testing.T, svc *Service, userID uint, in CreateQuestInput) *models.Quest {
	t.Helper()

	quest, err := svc.CreateQuest(userID, in)
	if err != nil {
		t.Fatalf("create quest: %v", err)
	}
	return quest
}
