// models/habit.go
package models

import (
	"time"
)

// Habit is a recurring task owned by a user. Frequency is the number of days
// between expected completions (1 = daily).
type Habit struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null;size:100;index" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	Frequency   int    `gorm:"default:1" json:"frequency"`
	OwnerID     uint   `gorm:"not null;index" json:"owner_id"`
	Owner       *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Streak tracks consecutive on-schedule completions for one (user, habit) pair.
// LongestStreak never decreases; LastCompleted is nil until the first completion.
type Streak struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;uniqueIndex:idx_streaks_user_habit" json:"user_id"`
	HabitID       uint       `gorm:"not null;uniqueIndex:idx_streaks_user_habit" json:"habit_id"`
	CurrentStreak int        `gorm:"default:0" json:"current_streak"`
	LongestStreak int        `gorm:"default:0" json:"longest_streak"`
	LastCompleted *time.Time `json:"last_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Habit) TableName() string {
	return "habits"
}

func (Streak) TableName() string {
	return "streaks"
}
