// models/achievement.go
package models

import "time"

// Achievement is a reward gated by a declarative condition. Condition holds a
// JSON triple {"field": "streak|xp|level", "operator": ">=|<=|>|<|==", "value": n}
// parsed by services.ParseCondition. Global achievements apply to every user;
// non-global ones only to the owning user.
type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null;size:100" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Condition   string `gorm:"type:text;not null" json:"condition"`
	IsGlobal    bool   `gorm:"default:true" json:"is_global"`
	UserID      *uint  `gorm:"index" json:"user_id,omitempty"`
	GemsReward  int    `gorm:"default:1" json:"gems_reward"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserAchievement records that a user has been granted an achievement,
// optionally remembering the habit whose completion triggered it.
// At most one grant exists per (user, achievement).
type UserAchievement struct {
	ID            uint  `gorm:"primaryKey" json:"id"`
	UserID        uint  `gorm:"not null;uniqueIndex:idx_user_achievements_pair" json:"user_id"`
	AchievementID uint  `gorm:"not null;uniqueIndex:idx_user_achievements_pair" json:"achievement_id"`
	HabitID       *uint `gorm:"index" json:"habit_id,omitempty"`
	Obtained      bool  `gorm:"default:false" json:"obtained"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User        *User        `gorm:"foreignKey:UserID" json:"-"`
	Achievement *Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}

func (Achievement) TableName() string {
	return "achievements"
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
