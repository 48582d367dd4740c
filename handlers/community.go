// handlers/community.go
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cheihkseck32-hue/solo-leveling-system/middleware"
	"github.com/cheihkseck32-hue/solo-leveling-system/services"
)

type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

func GetPosts(c *fiber.Ctx) error {
	posts, err := svc.ListPosts(c.QueryInt("limit", 50))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch posts"})
	}
	return c.JSON(fiber.Map{"success": true, "posts": posts})
}

func GetPost(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid post id"})
	}

	post, err := svc.GetPost(uint(postID))
	if errors.Is(err, services.ErrPostNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Post not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch post"})
	}

	return c.JSON(fiber.Map{"success": true, "post": post})
}

func CreatePost(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Title == "" || req.Content == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Title and content required"})
	}

	post, err := svc.CreatePost(userID, req.Title, req.Content)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create post"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "post": post})
}

func UpdatePost(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	postID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid post id"})
	}

	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	post, err := svc.UpdatePost(userID, uint(postID), req.Title, req.Content)
	if errors.Is(err, services.ErrPostNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Post not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update post"})
	}

	return c.JSON(fiber.Map{"success": true, "post": post})
}

func AddComment(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	postID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid post id"})
	}

	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Content == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Content required"})
	}

	comment, err := svc.AddComment(userID, uint(postID), req.Content)
	if errors.Is(err, services.ErrPostNotFound) {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Post not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to add comment"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "comment": comment})
}
