// services/quest.go - Quest availability rules
package services

import (
	"errors"
	"time"

	"github.com/kovalets-vlad/Gamified-habit-tracker/models"
)

var (
	ErrQuestNotActive        = errors.New("quest is not active")
	ErrQuestNotStarted       = errors.New("quest has not started yet")
	ErrQuestExpired          = errors.New("quest has expired")
	ErrQuestAlreadyCompleted = errors.New("quest already completed")
	ErrConditionNotMet       = errors.New("quest conditions not met")
)

// CheckQuestWindow rejects completion attempts against inactive quests and
// quests outside their optional time window.
func CheckQuestWindow(q *models.Quest, now time.Time) error {
	if !q.IsActive {
		return ErrQuestNotActive
	}
	if q.StartDate != nil && now.Before(*q.StartDate) {
		return ErrQuestNotStarted
	}
	if q.EndDate != nil && now.After(*q.EndDate) {
		return ErrQuestExpired
	}
	return nil
}
