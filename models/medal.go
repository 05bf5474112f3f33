// models/medal.go
package models

import "time"

// Medal is a curated badge tied to one or more achievements. Medals are
// managed by admins; users hold them indirectly through achievement grants.
type Medal struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null;size:100" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:50" json:"icon"`
	XPReward    int    `gorm:"default:0" json:"xp_reward"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MedalAchievementLink connects a medal to one of the achievements that
// count toward it.
type MedalAchievementLink struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	MedalID       uint `gorm:"not null;uniqueIndex:idx_medal_achievement" json:"medal_id"`
	AchievementID uint `gorm:"not null;uniqueIndex:idx_medal_achievement" json:"achievement_id"`
}

func (Medal) TableName() string {
	return "medals"
}

func (MedalAchievementLink) TableName() string {
	return "medal_achievement_links"
}
