// handlers/achievements.go
package handlers

import (
	"github.com/kovalets-vlad/Gamified-habit-tracker/database"
	"github.com/kovalets-vlad/Gamified-habit-tracker/middleware"
	"github.com/kovalets-vlad/Gamified-habit-tracker/models"

	"github.com/gofiber/fiber/v2"
)

// GetAchievements lists the achievements in scope for the caller (global plus
// their own personal ones) with the unlocked flag resolved.
func GetAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()

	var achievements []models.Achievement
	if err := db.Where("is_global = ? OR user_id = ?", true, userID).
		Find(&achievements).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch achievements"})
	}

	var grants []models.UserAchievement
	if err := db.Where("user_id = ?", userID).Find(&grants).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch achievements"})
	}

	grantMap := make(map[uint]models.UserAchievement, len(grants))
	for _, g := range grants {
		grantMap[g.AchievementID] = g
	}

	out := make([]fiber.Map, 0, len(achievements))
	for _, ach := range achievements {
		entry := fiber.Map{
			"id":          ach.ID,
			"title":       ach.Title,
			"description": ach.Description,
			"gems_reward": ach.GemsReward,
			"is_global":   ach.IsGlobal,
			"unlocked":    false,
		}
		if g, ok := grantMap[ach.ID]; ok {
			entry["unlocked"] = true
			entry["unlocked_at"] = g.CreatedAt
		}
		out = append(out, entry)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"achievements": out,
		"total":        len(achievements),
		"unlocked":     len(grants),
	})
}

// GetUserAchievements lists the caller's grant records, newest first.
func GetUserAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 100)
	if limit > 100 {
		limit = 100
	}

	db := database.GetDB()
	var grants []models.UserAchievement
	if err := db.Preload("Achievement").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&grants).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch achievements"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"achievements": grants,
	})
}
