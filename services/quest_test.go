package services

import (
	"errors"
	"testing"
	"time"

	"github.com/kovalets-vlad/Gamified-habit-tracker/models"
)

func TestCheckQuestWindow(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -10)
	future := now.AddDate(0, 0, 10)

	tests := []struct {
		name  string
		quest models.Quest
		err   error
	}{
		{
			name:  "active unbounded",
			quest: models.Quest{IsActive: true},
		},
		{
			name:  "inside window",
			quest: models.Quest{IsActive: true, StartDate: &past, EndDate: &future},
		},
		{
			name:  "inactive",
			quest: models.Quest{IsActive: false},
			err:   ErrQuestNotActive,
		},
		{
			name:  "not started yet",
			quest: models.Quest{IsActive: true, StartDate: &future},
			err:   ErrQuestNotStarted,
		},
		{
			name:  "expired even when otherwise valid",
			quest: models.Quest{IsActive: true, EndDate: &past},
			err:   ErrQuestExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckQuestWindow(&tt.quest, now)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}
