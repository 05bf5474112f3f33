// services/streak.go - Streak state transition
package services

import (
	"errors"
	"time"

	"github.com/kovalets-vlad/Gamified-habit-tracker/models"
)

var (
	ErrAlreadyCompletedToday = errors.New("habit already completed today")
	ErrStreakNotFound        = errors.New("streak not found")
)

// DayOf truncates a timestamp to its UTC calendar day. Streak comparisons work
// at day granularity only.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AdvanceStreak applies one completion to a streak given the habit's frequency
// in days and the current time. The chain continues only when the previous
// completion happened exactly frequency days ago; any other gap (or a
// first-ever completion) resets the count to 1. A second completion on the
// same day is rejected without touching the streak.
func AdvanceStreak(s *models.Streak, frequency int, now time.Time) error {
	if frequency < 1 {
		frequency = 1
	}

	today := DayOf(now)
	if s.LastCompleted != nil {
		last := DayOf(*s.LastCompleted)
		switch {
		case last.Equal(today):
			return ErrAlreadyCompletedToday
		case last.Equal(today.AddDate(0, 0, -frequency)):
			s.CurrentStreak++
		default:
			s.CurrentStreak = 1
		}
	} else {
		s.CurrentStreak = 1
	}

	s.LastCompleted = &today
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	return nil
}
