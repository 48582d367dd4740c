// handlers/goals.go
package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cheihkseck32-hue/solo-leveling-system/middleware"
	"github.com/cheihkseck32-hue/solo-leveling-system/models"
	"github.com/cheihkseck32-hue/solo-leveling-system/services"
)

type GoalRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Priority    int        `json:"priority"`
	IsActive    *bool      `json:"is_active,omitempty"`

	// When true, the suggestion templates decompose the new goal into quests.
	GenerateQuests bool `json:"generate_quests"`
}

func GetGoals(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	goals, err := svc.ListGoals(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch goals"})
	}

	// Completion is derived on every read, never stored.
	summaries := make([]fiber.Map, 0, len(goals))
	for _, goal := range goals {
		pct := services.CompletionPercentage(goal.Quests)
		summaries = append(summaries, fiber.Map{
			"goal":                  goal,
			"completion_percentage": pct,
			"is_completed":          pct == 100,
		})
	}

	return c.JSON(fiber.Map{"success": true, "goals": summaries})
}

func GetGoal(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	goalID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid goal id"})
	}

	detail, err := svc.GoalDetail(userID, uint(goalID))
	if errors.Is(err, services.ErrGoalNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Goal not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch goal"})
	}

	return c.JSON(fiber.Map{"success": true, "detail": detail})
}

func CreateGoal(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Title == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Title is required"})
	}

	goal := models.Goal{
		Title:       req.Title,
		Description: req.Description,
		Category:    models.GoalCategory(req.Category),
		Deadline:    req.Deadline,
		Priority:    req.Priority,
	}
	if err := svc.CreateGoal(userID, &goal); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create goal"})
	}

	var generated []models.Quest
	if req.GenerateQuests {
		generated, err = svc.GenerateQuestsFromGoal(userID, goal.ID)
		if err != nil {
			generated = nil
		}
	}

	return c.Status(201).JSON(fiber.Map{
		"success":          true,
		"goal":             goal,
		"generated_quests": generated,
	})
}

func UpdateGoal(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	goalID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid goal id"})
	}

	var req GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	goal := models.Goal{
		ID:          uint(goalID),
		Title:       req.Title,
		Description: req.Description,
		Category:    models.GoalCategory(req.Category),
		Deadline:    req.Deadline,
		Priority:    req.Priority,
		IsActive:    active,
	}
	err = svc.UpdateGoal(userID, &goal)
	if errors.Is(err, services.ErrGoalNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Goal not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update goal"})
	}

	return c.JSON(fiber.Map{"success": true, "goal": goal})
}

func DeleteGoal(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	goalID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid goal id"})
	}

	err = svc.DeleteGoal(userID, uint(goalID))
	if errors.Is(err, services.ErrGoalNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Goal not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete goal"})
	}

	return c.JSON(fiber.Map{"success": true})
}
