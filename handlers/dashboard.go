// handlers/dashboard.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cheihkseck32-hue/solo-leveling-system/middleware"
)

func GetDashboard(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	state, err := svc.Dashboard(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to build dashboard"})
	}

	return c.JSON(fiber.Map{"success": true, "dashboard": state})
}

func GetAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	achievements, err := svc.ListAchievements(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch achievements"})
	}

	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
		}
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"achievements": achievements,
		"total":        len(achievements),
		"unlocked":     unlocked,
	})
}
