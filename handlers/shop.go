// handlers/shop.go
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cheihkseck32-hue/solo-leveling-system/middleware"
	"github.com/cheihkseck32-hue/solo-leveling-system/services"
)

func GetShopItems(c *fiber.Ctx) error {
	items, err := svc.ListShopItems()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch shop items"})
	}
	return c.JSON(fiber.Map{"success": true, "items": items})
}

// PurchaseItem buys a catalog item. A declined purchase (not enough coins)
// is a 200 with ok=false, not an error.
func PurchaseItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	itemID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid item id"})
	}

	result, err := svc.PurchaseItem(userID, uint(itemID))
	if errors.Is(err, services.ErrItemNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Item not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to process purchase"})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"ok":          result.Ok,
		"reason":      result.Reason,
		"new_balance": result.NewBalance,
		"item":        result.Item,
	})
}

func GetInventory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	items, err := svc.Inventory(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch inventory"})
	}

	return c.JSON(fiber.Map{"success": true, "inventory": items})
}

type EquipRequest struct {
	Equipped bool `json:"equipped"`
}

func EquipItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	inventoryID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid inventory id"})
	}

	var req EquipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	err = svc.EquipItem(userID, uint(inventoryID), req.Equipped)
	if errors.Is(err, services.ErrInventoryNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Inventory item not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update item"})
	}

	return c.JSON(fiber.Map{"success": true, "equipped": req.Equipped})
}
