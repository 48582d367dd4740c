// handlers/profile.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cheihkseck32-hue/solo-leveling-system/middleware"
	"github.com/cheihkseck32-hue/solo-leveling-system/services"
)

func GetProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := svc.ProfileWithInventory(userID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Profile not found"})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"profile":          profile,
		"stats":            services.TotalStats(profile),
		"equipped_items":   services.EquippedItems(profile),
		"xp_to_next_level": services.XPToNextLevel(profile.Level),
		"xp_progress":      services.XPProgress(profile),
	})
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

func UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Name is required"})
	}

	profile, err := svc.UpdateProfileName(userID, req.Name)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"success": true, "profile": profile})
}
