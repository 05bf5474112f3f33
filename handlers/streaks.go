// handlers/streaks.go
package handlers

import (
	"github.com/kovalets-vlad/Gamified-habit-tracker/database"
	"github.com/kovalets-vlad/Gamified-habit-tracker/middleware"
	"github.com/kovalets-vlad/Gamified-habit-tracker/models"

	"github.com/gofiber/fiber/v2"
)

// Streaks are created with their habit and mutated only by habit completion,
// so these endpoints are read-only.

// GetStreaks lists the caller's streaks, optionally filtered by habit.
func GetStreaks(c *fiber.Ctx) error {
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
	query := db.Where("user_id = ?", userID)
	if habitID := c.QueryInt("habit_id", 0); habitID > 0 {
		query = query.Where("habit_id = ?", habitID)
	}

	var streaks []models.Streak
	if err := query.Offset(offset).Limit(limit).Find(&streaks).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch streaks"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"streaks": streaks,
	})
}

// GetStreak returns one streak owned by the caller.
func GetStreak(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	streakID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid streak id"})
	}

	db := database.GetDB()
	var streak models.Streak
	if err := db.First(&streak, streakID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Streak not found"})
	}
	if streak.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "Not your streak"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"streak":  streak,
	})
}
