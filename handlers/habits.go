// handlers/habits.go
package handlers

import (
	"errors"
	"time"

	"github.com/kovalets-vlad/Gamified-habit-tracker/database"
	"github.com/kovalets-vlad/Gamified-habit-tracker/middleware"
	"github.com/kovalets-vlad/Gamified-habit-tracker/models"
	"github.com/kovalets-vlad/Gamified-habit-tracker/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateHabitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Frequency   int    `json:"frequency"`
}

type UpdateHabitRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
	Frequency   *int    `json:"frequency"`
}

// CreateHabit creates a habit and its streak tracker in one transaction.
func CreateHabit(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req CreateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Title == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title is required"})
	}
	if req.Frequency < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Frequency must be positive"})
	}
	if req.Frequency == 0 {
		req.Frequency = 1
	}

	habit := models.Habit{
		Title:       req.Title,
		Description: req.Description,
		IsActive:    true,
		Frequency:   req.Frequency,
		OwnerID:     userID,
	}

	db := database.GetDB()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&habit).Error; err != nil {
			return err
		}
		streak := models.Streak{UserID: userID, HabitID: habit.ID}
		return tx.Create(&streak).Error
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create habit"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"habit":   habit,
	})
}

// GetHabits lists the authenticated user's habits with offset/limit paging.
func GetHabits(c *fiber.Ctx) error {
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
	var habits []models.Habit
	if err := db.Where("owner_id = ?", userID).
		Offset(offset).Limit(limit).Find(&habits).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch habits"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"habits":  habits,
	})
}

// GetHabit returns one habit owned by the authenticated user.
func GetHabit(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	habitID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid habit id"})
	}

	db := database.GetDB()
	var habit models.Habit
	if err := db.First(&habit, habitID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Habit not found"})
	}
	if habit.OwnerID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "Not your habit"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"habit":   habit,
	})
}

// GetHabitsByUser lists another user's habits (admin and moderator only see
// inactive ones; everyone sees active ones).
func GetHabitsByUser(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 100)
	if limit > 100 {
		limit = 100
	}

	db := database.GetDB()
	query := db.Where("owner_id = ?", targetID)

	role, _ := middleware.GetRole(c)
	if role != string(models.RoleAdmin) && role != string(models.RoleModerator) {
		query = query.Where("is_active = ?", true)
	}

	var habits []models.Habit
	if err := query.Offset(offset).Limit(limit).Find(&habits).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch habits"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"habits":  habits,
	})
}

// UpdateHabit applies a partial update to a habit owned by the caller.
func UpdateHabit(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	habitID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid habit id"})
	}

	var req UpdateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.GetDB()
	var habit models.Habit
	if err := db.First(&habit, habitID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Habit not found"})
	}
	if habit.OwnerID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "Not your habit"})
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Frequency != nil {
		if *req.Frequency < 1 {
			return c.Status(400).JSON(fiber.Map{"error": "Frequency must be positive"})
		}
		updates["frequency"] = *req.Frequency
	}

	if len(updates) > 0 {
		if err := db.Model(&habit).Updates(updates).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update habit"})
		}
	}

	db.First(&habit, habitID)
	return c.JSON(fiber.Map{
		"success": true,
		"habit":   habit,
	})
}

// DeleteHabit removes a habit along with its streak and habit-scoped grants.
func DeleteHabit(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	habitID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid habit id"})
	}

	db := database.GetDB()
	var habit models.Habit
	if err := db.First(&habit, habitID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Habit not found"})
	}
	if habit.OwnerID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "Not your habit"})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habit.ID).Delete(&models.Streak{}).Error; err != nil {
			return err
		}
		if err := tx.Where("habit_id = ?", habit.ID).Delete(&models.UserAchievement{}).Error; err != nil {
			return err
		}
		return tx.Delete(&habit).Error
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete habit"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// CompleteHabit is the composition point of the three rule evaluators: it
// advances the streak, awards XP and recomputes the level, then runs the
// achievement grant pass. Everything happens in one transaction with the
// streak, user and wallet rows locked, so concurrent completions of the same
// habit serialize instead of losing updates.
func CompleteHabit(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	habitID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid habit id"})
	}

	db := database.GetDB()
	var habit models.Habit
	if err := db.First(&habit, habitID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Habit not found"})
	}
	if habit.OwnerID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "Not your habit"})
	}
	if !habit.IsActive {
		return c.Status(400).JSON(fiber.Map{"error": "Habit is not active"})
	}

	now := time.Now().UTC()

	var (
		streak    models.Streak
		user      models.User
		granted   []models.Achievement
		xpGain    int
		leveledUp bool
	)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND habit_id = ?", userID, habit.ID).
			First(&streak).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrStreakNotFound
			}
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, userID).Error; err != nil {
			return err
		}

		if err := services.AdvanceStreak(&streak, habit.Frequency, now); err != nil {
			return err
		}

		xpGain = services.XPForCompletion(habit.Frequency)
		oldLevel := user.Level
		user.XP += xpGain
		user.Level = services.LevelForXP(user.XP)
		leveledUp = user.Level > oldLevel

		if err := tx.Save(&streak).Error; err != nil {
			return err
		}
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		granted, err = services.GrantAchievements(tx, &user, &habit, &streak)
		return err
	})

	switch {
	case errors.Is(err, services.ErrAlreadyCompletedToday):
		return c.Status(409).JSON(fiber.Map{"error": "Habit already completed today"})
	case errors.Is(err, services.ErrStreakNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Streak not found for this habit"})
	case err != nil:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to complete habit"})
	}

	if leveledUp {
		BroadcastReward(RewardEvent{
			Type:     "level_up",
			UserID:   user.ID,
			Nickname: user.Nickname,
			Level:    user.Level,
		})
	}
	for _, ach := range granted {
		BroadcastReward(RewardEvent{
			Type:     "achievement",
			UserID:   user.ID,
			Nickname: user.Nickname,
			Title:    ach.Title,
		})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"xp_earned":        xpGain,
		"level":            user.Level,
		"leveled_up":       leveledUp,
		"total_xp":         user.XP,
		"current_streak":   streak.CurrentStreak,
		"longest_streak":   streak.LongestStreak,
		"new_achievements": granted,
	})
}
