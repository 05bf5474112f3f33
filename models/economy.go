// models/economy.go
package models

import "time"

// UserWallet holds a user's balances across the three currencies. Coins come
// from quests, gems from achievements, event tokens from seasonal quests.
type UserWallet struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	UserID      uint `gorm:"not null;uniqueIndex" json:"user_id"`
	Coins       int  `gorm:"default:0" json:"coins"`
	Gems        int  `gorm:"default:0" json:"gems"`
	EventTokens int  `gorm:"default:0" json:"event_tokens"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShopItem is a purchasable item priced in a single currency, optionally
// gated behind a minimum XP total.
type ShopItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;size:100" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ItemType    string `gorm:"not null;size:50;index" json:"item_type"` // avatar, badge, theme, booster
	Price       int    `gorm:"not null" json:"price"`
	Currency    string `gorm:"not null;size:20;default:'coins'" json:"currency"`
	NeedXP      int    `gorm:"default:0" json:"need_xp"`

	CreatedAt time.Time `json:"created_at"`
}

// UserItem is an ownership record. At most one item of a given ItemType may be
// equipped per user at a time; the shop handler enforces this on equip.
type UserItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	ItemID     uint      `gorm:"not null;index" json:"item_id"`
	ReceiptID  string    `gorm:"size:36;uniqueIndex" json:"receipt_id"`
	IsEquipped bool      `gorm:"default:false" json:"is_equipped"`
	AcquiredAt time.Time `json:"acquired_at"`

	// Relationships
	Item *ShopItem `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

func (UserWallet) TableName() string {
	return "user_wallets"
}

func (ShopItem) TableName() string {
	return "shop_items"
}

func (UserItem) TableName() string {
	return "user_items"
}
