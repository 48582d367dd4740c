// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

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
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	if err := SeedCatalog(db); err != nil {
		log.Fatalf("❌ Failed to seed catalog data: %v", err)
	}

	log.Println("✅ All migrations completed successfully")
}

func createIndexes() {
	db := GetDB()

	// Quest lookups by owner and lifecycle state
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quests_user_status ON quests(user_id, status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quests_goal ON quests(goal_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quests_started ON quests(started_at)")

	// Goal listings
	db.Exec("CREATE INDEX IF NOT EXISTS idx_goals_user_active ON goals(user_id, is_active)")

	// Inventory and achievements
	db.Exec("CREATE INDEX IF NOT EXISTS idx_inventory_profile ON inventory_items(profile_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_user ON user_achievements(user_id)")

	// Community feed
	db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_created ON community_posts(created_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_comments_post ON comments(post_id)")
}
