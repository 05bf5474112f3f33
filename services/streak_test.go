package services

import (
	"errors"
	"testing"
	"time"

	"github.com/kovalets-vlad/Gamified-habit-tracker/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(t time.Time) *time.Time {
	return &t
}

func TestAdvanceStreakFirstCompletion(t *testing.T) {
	s := &models.Streak{}
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	if err := AdvanceStreak(s, 1, now); err != nil {
		t.Fatalf("advance streak: %v", err)
	}
	if s.CurrentStreak != 1 {
		t.Fatalf("expected current streak 1, got %d", s.CurrentStreak)
	}
	if s.LongestStreak != 1 {
		t.Fatalf("expected longest streak 1, got %d", s.LongestStreak)
	}
	if s.LastCompleted == nil || !s.LastCompleted.Equal(day(2026, 3, 10)) {
		t.Fatalf("expected last completed 2026-03-10, got %v", s.LastCompleted)
	}
}

func TestAdvanceStreakTransitions(t *testing.T) {
	tests := []struct {
		name          string
		frequency     int
		lastCompleted *time.Time
		current       int
		longest       int
		wantCurrent   int
		wantLongest   int
	}{
		{
			name:          "daily continuation",
			frequency:     1,
			lastCompleted: dayPtr(day(2026, 3, 9)),
			current:       4,
			longest:       4,
			wantCurrent:   5,
			wantLongest:   5,
		},
		{
			name:          "every third day continuation",
			frequency:     3,
			lastCompleted: dayPtr(day(2026, 3, 7)),
			current:       2,
			longest:       6,
			wantCurrent:   3,
			wantLongest:   6,
		},
		{
			name:          "broken chain resets",
			frequency:     1,
			lastCompleted: dayPtr(day(2026, 3, 5)),
			current:       9,
			longest:       9,
			wantCurrent:   1,
			wantLongest:   9,
		},
		{
			name:          "completion too early for frequency resets",
			frequency:     3,
			lastCompleted: dayPtr(day(2026, 3, 9)),
			current:       2,
			longest:       2,
			wantCurrent:   1,
			wantLongest:   2,
		},
		{
			name:        "no prior completion",
			frequency:   2,
			current:     0,
			longest:     0,
			wantCurrent: 1,
			wantLongest: 1,
		},
	}

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &models.Streak{
				CurrentStreak: tt.current,
				LongestStreak: tt.longest,
				LastCompleted: tt.lastCompleted,
			}

			if err := AdvanceStreak(s, tt.frequency, now); err != nil {
				t.Fatalf("advance streak: %v", err)
			}
			if s.CurrentStreak != tt.wantCurrent {
				t.Fatalf("expected current streak %d, got %d", tt.wantCurrent, s.CurrentStreak)
			}
			if s.LongestStreak != tt.wantLongest {
				t.Fatalf("expected longest streak %d, got %d", tt.wantLongest, s.LongestStreak)
			}
			if s.LastCompleted == nil || !s.LastCompleted.Equal(day(2026, 3, 10)) {
				t.Fatalf("expected last completed to advance to today, got %v", s.LastCompleted)
			}
		})
	}
}

func TestAdvanceStreakRejectsSameDay(t *testing.T) {
	last := day(2026, 3, 10)
	s := &models.Streak{
		CurrentStreak: 3,
		LongestStreak: 7,
		LastCompleted: &last,
	}

	// Later the same calendar day, different wall-clock time.
	now := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	err := AdvanceStreak(s, 1, now)
	if !errors.Is(err, ErrAlreadyCompletedToday) {
		t.Fatalf("expected ErrAlreadyCompletedToday, got %v", err)
	}
	if s.CurrentStreak != 3 || s.LongestStreak != 7 {
		t.Fatalf("rejected completion must not change state, got current=%d longest=%d",
			s.CurrentStreak, s.LongestStreak)
	}
	if !s.LastCompleted.Equal(last) {
		t.Fatalf("rejected completion must not move last completed, got %v", s.LastCompleted)
	}
}

func TestLongestStreakNeverDecreases(t *testing.T) {
	s := &models.Streak{}
	now := day(2026, 1, 1)

	prevLongest := 0
	// Alternate runs of continuations and a deliberate two-day gap.
	for i := 0; i < 30; i++ {
		if i%7 == 0 && i > 0 {
			now = now.AddDate(0, 0, 2) // break the chain
		} else {
			now = now.AddDate(0, 0, 1)
		}
		if err := AdvanceStreak(s, 1, now); err != nil {
			t.Fatalf("advance streak at step %d: %v", i, err)
		}
		if s.LongestStreak < prevLongest {
			t.Fatalf("longest streak decreased from %d to %d at step %d",
				prevLongest, s.LongestStreak, i)
		}
		if s.LongestStreak < s.CurrentStreak {
			t.Fatalf("longest %d fell below current %d at step %d",
				s.LongestStreak, s.CurrentStreak, i)
		}
		prevLongest = s.LongestStreak
	}
}

func TestAdvanceStreakZeroFrequencyTreatedAsDaily(t *testing.T) {
	s := &models.Streak{
		CurrentStreak: 2,
		LongestStreak: 2,
		LastCompleted: dayPtr(day(2026, 3, 9)),
	}

	if err := AdvanceStreak(s, 0, day(2026, 3, 10)); err != nil {
		t.Fatalf("advance streak: %v", err)
	}
	if s.CurrentStreak != 3 {
		t.Fatalf("expected daily continuation, got current streak %d", s.CurrentStreak)
	}
}
