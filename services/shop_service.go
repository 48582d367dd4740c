// services/shop_service.go - Purchases and inventory
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

// PurchaseResult is the outcome of a purchase attempt. A declined purchase
// (insufficient coins) is a normal outcome, not an error.
type PurchaseResult struct {
	Ok         bool                  `json:"ok"`
	Reason     string                `json:"reason,omitempty"`
	NewBalance int                   `json:"new_balance"`
	Item       *models.InventoryItem `json:"item,omitempty"`
}

const ReasonInsufficientCoins = "insufficient_coins"

// ListShopItems returns the catalog, cheapest first.
func (s *Service) ListShopItems() ([]models.ShopItem, error) {
	var items []models.ShopItem
	err := s.db.Order("price ASC").Find(&items).Error
	return items, err
}

// PurchaseItem deducts the price and appends a snapshot of the catalog item
// to the profile's inventory. Coins never go below zero: when the balance is
// short the state is left untouched and the result reports the decline.
func (s *Service) PurchaseItem(userID, itemID uint) (*PurchaseResult, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	now := s.now()
	result := &PurchaseResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.ShopItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		profile, err := profileForUser(tx, userID)
		if err != nil {
			return err
		}

		if profile.Coins < item.Price {
			result.Ok = false
			result.Reason = ReasonInsufficientCoins
			result.NewBalance = profile.Coins
			return nil
		}

		profile.Coins -= item.Price

		owned := models.InventoryItem{
			ProfileID:    profile.ID,
			ShopItemID:   item.ID,
			Name:         item.Name,
			ItemType:     item.ItemType,
			Rarity:       item.Rarity,
			StatType:     item.StatType,
			StatIncrease: item.StatIncrease,
			Icon:         item.Icon,
			Equipped:     false,
			PurchasedAt:  now,
		}
		if err := tx.Create(&owned).Error; err != nil {
			return err
		}
		if err := tx.Save(profile).Error; err != nil {
			return err
		}

		result.Ok = true
		result.NewBalance = profile.Coins
		result.Item = &owned
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Ok {
		s.hub.Publish(userID, EventItemPurchased, map[string]interface{}{
			"item":        result.Item.Name,
			"rarity":      result.Item.Rarity,
			"new_balance": result.NewBalance,
		})
	}
	return result, nil
}

// EquipItem toggles the equipped flag on an owned item.
func (s *Service) EquipItem(userID, inventoryID uint, equipped bool) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		profile, err := profileForUser(tx, userID)
		if err != nil {
			return err
		}

		var owned models.InventoryItem
		if err := tx.Where("id = ? AND profile_id = ?", inventoryID, profile.ID).First(&owned).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInventoryNotFound
			}
			return err
		}

		owned.Equipped = equipped
		return tx.Save(&owned).Error
	})
}

// Inventory returns the profile's owned items, newest purchase first.
func (s *Service) Inventory(userID uint) ([]models.InventoryItem, error) {
	profile, err := profileForUser(s.db, userID)
	if err != nil {
		return nil, err
	}
	var items []models.InventoryItem
	err = s.db.Where("profile_id = ?", profile.ID).Order("purchased_at DESC").Find(&items).Error
	return items, err
}
