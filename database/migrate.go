// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"github.com/kovalets-vlad/Gamified-habit-tracker/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Habit{},
		&models.Streak{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.Medal{},
		&models.MedalAchievementLink{},
		&models.Quest{},
		&models.UserQuest{},
		&models.UserWallet{},
		&models.ShopItem{},
		&models.UserItem{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

func createIndexes() {
	db := GetDB()

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_xp ON users(xp DESC)")

	// Habit indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_habits_owner ON habits(owner_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_habits_active ON habits(is_active)")

	// Streak indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_streaks_user ON streaks(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_streaks_habit ON streaks(habit_id)")

	// Grant and quest indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_user ON user_achievements(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_quests_user ON user_quests(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quests_window ON quests(start_date, end_date)")

	// Economy indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_items_user ON user_items(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_shop_items_type ON shop_items(item_type)")
}
