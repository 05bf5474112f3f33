// database/seed.go - Bootstrap data
package database

import (
	"log"
	"os"

	"github.com/kovalets-vlad/Gamified-habit-tracker/models"

	"golang.org/x/crypto/bcrypt"
)

// Seed creates the bootstrap admin account and starter rewards. Each step is
// skipped when data already exists, so Seed is safe to run on every start.
func Seed() {
	seedAdminUser()
	seedAchievements()
	seedShopItems()
}

func seedAdminUser() {
	db := GetDB()

	username := getEnvOrDefault("ADMIN_USERNAME", "admin")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin bootstrap")
		return
	}

	var count int64
	db.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Username: username,
		Nickname: "Admin",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to create admin user: %v", err)
		return
	}

	wallet := models.UserWallet{UserID: admin.ID}
	if err := db.Create(&wallet).Error; err != nil {
		log.Printf("Failed to create admin wallet: %v", err)
	}

	log.Printf("✅ Bootstrap admin user %q created", username)
}

func seedAchievements() {
	db := GetDB()

	var count int64
	db.Model(&models.Achievement{}).Count(&count)
	if count > 0 {
		return
	}

	achievements := []models.Achievement{
		{
			Title:       "First Step",
			Description: "Complete a habit for the first time",
			Condition:   `{"field": "streak", "operator": ">=", "value": 1}`,
			GemsReward:  1,
			IsGlobal:    true,
		},
		{
			Title:       "Week Warrior",
			Description: "Keep a streak alive for seven completions",
			Condition:   `{"field": "streak", "operator": ">=", "value": 7}`,
			GemsReward:  5,
			IsGlobal:    true,
		},
		{
			Title:       "Marathon",
			Description: "Thirty consecutive completions",
			Condition:   `{"field": "streak", "operator": ">=", "value": 30}`,
			GemsReward:  20,
			IsGlobal:    true,
		},
		{
			Title:       "Centurion",
			Description: "Accumulate 100 experience points",
			Condition:   `{"field": "xp", "operator": ">=", "value": 100}`,
			GemsReward:  3,
			IsGlobal:    true,
		},
		{
			Title:       "Rising Star",
			Description: "Reach level 2",
			Condition:   `{"field": "level", "operator": ">=", "value": 2}`,
			GemsReward:  10,
			IsGlobal:    true,
		},
	}

	if err := db.Create(&achievements).Error; err != nil {
		log.Printf("Failed to seed achievements: %v", err)
		return
	}
	log.Printf("✅ Seeded %d starter achievements", len(achievements))
}

func seedShopItems() {
	db := GetDB()

	var count int64
	db.Model(&models.ShopItem{}).Count(&count)
	if count > 0 {
		return
	}

	items := []models.ShopItem{
		{Name: "Bronze Badge", Description: "A simple badge for your profile", ItemType: "badge", Price: 50, Currency: "coins"},
		{Name: "Golden Badge", Description: "Show off a long-lived account", ItemType: "badge", Price: 25, Currency: "gems", NeedXP: 400},
		{Name: "Night Theme", Description: "Dark profile theme", ItemType: "theme", Price: 100, Currency: "coins"},
		{Name: "Fox Avatar", Description: "An animal companion", ItemType: "avatar", Price: 10, Currency: "gems"},
		{Name: "Festival Hat", Description: "Seasonal avatar decoration", ItemType: "avatar", Price: 5, Currency: "event_tokens"},
	}

	if err := db.Create(&items).Error; err != nil {
		log.Printf("Failed to seed shop items: %v", err)
		return
	}
	log.Printf("✅ Seeded %d shop items", len(items))
}
