// handlers/quests.go
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

type CreateQuestRequest struct {
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Condition         string     `json:"condition"`
	XPReward          int        `json:"xp_reward"`
	CoinReward        int        `json:"coin_reward"`
	EventTokensReward int        `json:"event_tokens_reward"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
}

// GetQuests lists active quests currently inside their availability window,
// with the caller's completion state attached.
func GetQuests(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now().UTC()
	db := database.GetDB()

	var quests []models.Quest
	if err := db.Where("is_active = ?", true).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Find(&quests).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch quests"})
	}

	var completedIDs []uint
	db.Model(&models.UserQuest{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Pluck("quest_id", &completedIDs)
	completed := make(map[uint]bool, len(completedIDs))
	for _, id := range completedIDs {
		completed[id] = true
	}

	out := make([]fiber.Map, 0, len(quests))
	for _, q := range quests {
		out = append(out, fiber.Map{
			"id":                  q.ID,
			"title":               q.Title,
			"description":         q.Description,
			"xp_reward":           q.XPReward,
			"coin_reward":         q.CoinReward,
			"event_tokens_reward": q.EventTokensReward,
			"start_date":          q.StartDate,
			"end_date":            q.EndDate,
			"completed":           completed[q.ID],
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"quests":  out,
	})
}

// CreateQuest creates a quest; restricted to admin and manager roles by the
// route's RequireRole middleware. The condition triple is validated up front
// so unusable quests cannot be authored.
func CreateQuest(c *fiber.Ctx) error {
	var req CreateQuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Title == "" || req.Condition == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title and condition required"})
	}
	if _, err := services.ParseCondition(req.Condition); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Condition is not valid JSON"})
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return c.Status(400).JSON(fiber.Map{"error": "End date before start date"})
	}

	quest := models.Quest{
		Title:             req.Title,
		Description:       req.Description,
		Condition:         req.Condition,
		XPReward:          req.XPReward,
		CoinReward:        req.CoinReward,
		EventTokensReward: req.EventTokensReward,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		IsActive:          true,
	}

	db := database.GetDB()
	if err := db.Create(&quest).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create quest"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"quest":   quest,
	})
}

// DeleteQuest deactivates a quest instead of removing it, so completion
// history stays intact.
func DeleteQuest(c *fiber.Ctx) error {
	questID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quest id"})
	}

	db := database.GetDB()
	var quest models.Quest
	if err := db.First(&quest, questID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Quest not found"})
	}

	if err := db.Model(&quest).Update("is_active", false).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate quest"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quest deactivated",
	})
}

// CompleteQuest performs the guarded NotStarted -> Completed transition. The
// condition is evaluated against the user's strongest current streak and live
// xp/level; rewards and the completed flag commit in one transaction.
func CompleteQuest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	questID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quest id"})
	}

	now := time.Now().UTC()
	db := database.GetDB()

	var quest models.Quest
	if err := db.First(&quest, questID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Quest not found"})
	}

	var user models.User
	var wallet models.UserWallet

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := services.CheckQuestWindow(&quest, now); err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, userID).Error; err != nil {
			return err
		}

		// Quests with a streak condition judge the user's best live streak.
		var best models.Streak
		streakPtr := &best
		if err := tx.Where("user_id = ?", userID).
			Order("current_streak DESC").
			First(&best).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			streakPtr = nil
		}

		cond, err := services.ParseCondition(quest.Condition)
		if err != nil || !cond.Met(streakPtr, &user) {
			return services.ErrConditionNotMet
		}

		var userQuest models.UserQuest
		found := true
		if err := tx.Where("user_id = ? AND quest_id = ?", userID, quest.ID).
			First(&userQuest).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			found = false
			userQuest = models.UserQuest{UserID: userID, QuestID: quest.ID}
		}
		if userQuest.Completed {
			return services.ErrQuestAlreadyCompleted
		}

		userQuest.Completed = true
		userQuest.CompletedAt = &now
		if found {
			if err := tx.Save(&userQuest).Error; err != nil {
				return err
			}
		} else if err := tx.Create(&userQuest).Error; err != nil {
			return err
		}

		user.XP += quest.XPReward
		user.Level = services.LevelForXP(user.XP)
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&wallet).Error; err != nil {
			return err
		}
		wallet.Coins += quest.CoinReward
		wallet.EventTokens += quest.EventTokensReward
		return tx.Save(&wallet).Error
	})

	switch {
	case errors.Is(err, services.ErrQuestNotActive),
		errors.Is(err, services.ErrQuestNotStarted),
		errors.Is(err, services.ErrQuestExpired),
		errors.Is(err, services.ErrConditionNotMet):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrQuestAlreadyCompleted):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to complete quest"})
	}

	BroadcastReward(RewardEvent{
		Type:     "quest",
		UserID:   user.ID,
		Nickname: user.Nickname,
		Title:    quest.Title,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quest completed",
		"rewards": fiber.Map{
			"xp":           quest.XPReward,
			"coins":        quest.CoinReward,
			"event_tokens": quest.EventTokensReward,
		},
		"level":  user.Level,
		"wallet": wallet,
	})
}
