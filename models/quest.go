// models/quest.go
package models

import "time"

// Quest is a time-boxed task with a declarative unlock condition. Quests are
// soft-deleted by flipping IsActive; completed records are never removed.
type Quest struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null;size:100" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Condition   string `gorm:"type:text;not null" json:"condition"`

	// Rewards
	XPReward          int `gorm:"default:0" json:"xp_reward"`
	CoinReward        int `gorm:"default:0" json:"coin_reward"`
	EventTokensReward int `gorm:"default:0" json:"event_tokens_reward"`

	// Optional availability window. Nil means unbounded on that side.
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	IsActive  bool       `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserQuest records a user's completion of a quest. Completed is terminal:
// a quest can be completed at most once per user.
type UserQuest struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;uniqueIndex:idx_user_quests_pair" json:"user_id"`
	QuestID     uint       `gorm:"not null;uniqueIndex:idx_user_quests_pair" json:"quest_id"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Quest *Quest `gorm:"foreignKey:QuestID" json:"quest,omitempty"`
}

func (Quest) TableName() string {
	return "quests"
}

func (UserQuest) TableName() string {
	return "user_quests"
}
