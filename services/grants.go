// services/grants.go - Achievement grant pass
package services

import (
	"errors"
	"log"

	"github.com/kovalets-vlad/Gamified-habit-tracker/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GrantAchievements evaluates every in-scope achievement (global ones plus
// those owned by the user) against the just-updated streak and user state,
// inserting a single grant record per newly met achievement and crediting the
// gem reward to the user's wallet. Runs inside the caller's transaction so
// grants commit or roll back together with the completion that triggered them.
// Returns the achievements granted on this pass.
func GrantAchievements(tx *gorm.DB, user *models.User, habit *models.Habit, streak *models.Streak) ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := tx.Where("is_global = ? OR user_id = ?", true, user.ID).Find(&achievements).Error; err != nil {
		return nil, err
	}
	if len(achievements) == 0 {
		return nil, nil
	}

	var obtainedIDs []uint
	if err := tx.Model(&models.UserAchievement{}).
		Where("user_id = ?", user.ID).
		Pluck("achievement_id", &obtainedIDs).Error; err != nil {
		return nil, err
	}
	obtained := make(map[uint]bool, len(obtainedIDs))
	for _, id := range obtainedIDs {
		obtained[id] = true
	}

	var wallet models.UserWallet
	walletErr := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", user.ID).First(&wallet).Error
	if walletErr != nil && !errors.Is(walletErr, gorm.ErrRecordNotFound) {
		return nil, walletErr
	}

	var granted []models.Achievement
	gems := 0
	for _, ach := range achievements {
		if obtained[ach.ID] {
			continue
		}

		cond, err := ParseCondition(ach.Condition)
		if err != nil {
			// Malformed authoring data fails closed.
			log.Printf("Skipping achievement %d: unparseable condition: %v", ach.ID, err)
			continue
		}
		if !cond.Met(streak, user) {
			continue
		}

		grant := models.UserAchievement{
			UserID:        user.ID,
			AchievementID: ach.ID,
			HabitID:       &habit.ID,
			Obtained:      true,
		}
		if err := tx.Create(&grant).Error; err != nil {
			return nil, err
		}

		gems += ach.GemsReward
		granted = append(granted, ach)
	}

	if walletErr == nil && gems > 0 {
		wallet.Gems += gems
		if err := tx.Save(&wallet).Error; err != nil {
			return nil, err
		}
	}

	return granted, nil
}
