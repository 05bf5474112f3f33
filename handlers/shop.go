// handlers/shop.go
package handlers

import (
	"time"

	"github.com/kovalets-vlad/Gamified-habit-tracker/database"
	"github.com/kovalets-vlad/Gamified-habit-tracker/middleware"
	"github.com/kovalets-vlad/Gamified-habit-tracker/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BuyItemRequest struct {
	ItemID uint `json:"item_id"`
}

// GetShopItems lists everything purchasable.
func GetShopItems(c *fiber.Ctx) error {
	db := database.GetDB()

	var items []models.ShopItem
	if err := db.Find(&items).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch items"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"items":   items,
	})
}

// GetShopItem returns one shop item.
func GetShopItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item id"})
	}

	db := database.GetDB()
	var item models.ShopItem
	if err := db.First(&item, itemID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Item not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"item":    item,
	})
}

// BuyItem debits the item's price from the matching wallet balance and records
// ownership, in one transaction with the wallet row locked. Purchases are
// rejected when the balance or the user's XP gate falls short.
func BuyItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req BuyItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.GetDB()
	var item models.ShopItem
	if err := db.First(&item, req.ItemID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Item not found"})
	}

	var userItem models.UserItem
	err = db.Transaction(func(tx *gorm.DB) error {
		var wallet models.UserWallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&wallet).Error; err != nil {
			return fiber.NewError(404, "Wallet not found")
		}

		if item.NeedXP > 0 {
			var user models.User
			if err := tx.First(&user, userID).Error; err != nil {
				return err
			}
			if user.XP < item.NeedXP {
				return fiber.NewError(400, "Not enough XP")
			}
		}

		var balance *int
		switch item.Currency {
		case "coins":
			balance = &wallet.Coins
		case "gems":
			balance = &wallet.Gems
		case "event_tokens":
			balance = &wallet.EventTokens
		default:
			return fiber.NewError(500, "Item has unknown currency")
		}

		if *balance < item.Price {
			return fiber.NewError(400, "Not enough "+item.Currency)
		}
		*balance -= item.Price

		if err := tx.Save(&wallet).Error; err != nil {
			return err
		}

		userItem = models.UserItem{
			UserID:     userID,
			ItemID:     item.ID,
			ReceiptID:  uuid.New().String(),
			IsEquipped: false,
			AcquiredAt: time.Now().UTC(),
		}
		return tx.Create(&userItem).Error
	})

	if err != nil {
		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to purchase item"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Item purchased successfully",
		"user_item":  userItem,
		"receipt_id": userItem.ReceiptID,
	})
}

// GetUserItems lists the caller's inventory.
func GetUserItems(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var items []models.UserItem
	if err := db.Preload("Item").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inventory"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"items":   items,
	})
}

// EquipItem marks an owned item as equipped, unequipping any other item of
// the same type in the same transaction so at most one stays equipped per
// (user, item type).
func EquipItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	userItemID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item id"})
	}

	db := database.GetDB()
	err = db.Transaction(func(tx *gorm.DB) error {
		var userItem models.UserItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&userItem, userItemID).Error; err != nil {
			return fiber.NewError(404, "Item not found")
		}
		if userItem.UserID != userID {
			return fiber.NewError(403, "Not your item")
		}

		var item models.ShopItem
		if err := tx.First(&item, userItem.ItemID).Error; err != nil {
			return err
		}

		var typeItemIDs []uint
		if err := tx.Model(&models.ShopItem{}).
			Where("item_type = ?", item.ItemType).
			Pluck("id", &typeItemIDs).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.UserItem{}).
			Where("user_id = ? AND item_id IN ?", userID, typeItemIDs).
			Update("is_equipped", false).Error; err != nil {
			return err
		}

		return tx.Model(&userItem).Update("is_equipped", true).Error
	})

	if err != nil {
		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to equip item"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// UnequipItem clears the equipped flag on an owned item.
func UnequipItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	userItemID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item id"})
	}

	db := database.GetDB()
	var userItem models.UserItem
	if err := db.First(&userItem, userItemID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Item not found"})
	}
	if userItem.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "Not your item"})
	}

	if err := db.Model(&userItem).Update("is_equipped", false).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to unequip item"})
	}

	return c.JSON(fiber.Map{"success": true})
}
