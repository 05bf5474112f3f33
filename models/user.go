// models/user.go
package models

import (
	"time"
)

// Role controls access to admin and quest-management endpoints.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
	RoleManager   Role = "manager"
	RoleModerator Role = "moderator"
)

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Username string  `gorm:"uniqueIndex;not null" json:"username"`
	Nickname string  `gorm:"size:50;default:'User'" json:"nickname"`
	Email    *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password string  `gorm:"not null" json:"-"`
	Role     Role    `gorm:"size:20;default:'user';index" json:"role"`

	// Progression. Level is always derived from XP, never incremented on its own.
	XP    int `gorm:"default:0" json:"xp"`
	Level int `gorm:"default:0" json:"level"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	Habits       []Habit           `gorm:"foreignKey:OwnerID" json:"habits,omitempty"`
	Achievements []UserAchievement `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
}

func (User) TableName() string {
	return "users"
}
