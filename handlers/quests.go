// handlers/quests.go
package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cheihkseck32-hue/solo-leveling-system/middleware"
	"github.com/cheihkseck32-hue/solo-leveling-system/models"
	"github.com/cheihkseck32-hue/solo-leveling-system/services"
)

type CreateQuestRequest struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	QuestType     string     `json:"quest_type"`
	Difficulty    int        `json:"difficulty"`
	RewardXP      int        `json:"reward_xp"`
	RewardCoins   int        `json:"reward_coins"`
	RequiredLevel int        `json:"required_level"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	GoalID        *uint      `json:"goal_id,omitempty"`
}

func GetQuests(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	quests, err := svc.ListQuests(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch quests"})
	}

	return c.JSON(fiber.Map{"success": true, "quests": quests})
}

func GetQuest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	questID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid quest id"})
	}

	quest, err := svc.GetQuest(userID, uint(questID))
	if errors.Is(err, services.ErrQuestNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Quest not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch quest"})
	}

	return c.JSON(fiber.Map{"success": true, "quest": quest})
}

func CreateQuest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req CreateQuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Title == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Title is required"})
	}

	quest, err := svc.CreateQuest(userID, services.CreateQuestInput{
		Title:         req.Title,
		Description:   req.Description,
		QuestType:     models.QuestType(req.QuestType),
		Difficulty:    req.Difficulty,
		RewardXP:      req.RewardXP,
		RewardCoins:   req.RewardCoins,
		RequiredLevel: req.RequiredLevel,
		Deadline:      req.Deadline,
		GoalID:        req.GoalID,
	})
	if errors.Is(err, services.ErrGoalNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Goal not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create quest"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "quest": quest})
}

func StartQuest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	questID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid quest id"})
	}

	started, err := svc.StartQuest(userID, uint(questID))
	if errors.Is(err, services.ErrQuestNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Quest not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to start quest"})
	}

	return c.JSON(fiber.Map{"success": true, "started": started})
}

func CompleteQuest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	questID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid quest id"})
	}

	result, err := svc.CompleteQuest(userID, uint(questID))
	if errors.Is(err, services.ErrQuestNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Quest not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to complete quest"})
	}

	return c.JSON(fiber.Map{"success": true, "completion": result})
}

func FailQuest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	questID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid quest id"})
	}

	failed, err := svc.FailQuest(userID, uint(questID))
	if errors.Is(err, services.ErrQuestNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Quest not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fail quest"})
	}

	return c.JSON(fiber.Map{"success": true, "failed": failed})
}

// GetQuestSuggestions returns quest drafts from the suggestion provider.
// Provider failure degrades to the template provider, never an error.
func GetQuestSuggestions(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var goalID *uint
	if raw := c.QueryInt("goal_id", 0); raw > 0 {
		id := uint(raw)
		goalID = &id
	}

	suggestions := svc.SuggestQuests(userID, goalID)
	if suggestions == nil {
		suggestions = []services.QuestDraft{}
	}

	return c.JSON(fiber.Map{"success": true, "suggestions": suggestions})
}
