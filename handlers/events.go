// handlers/events.go - Live progression event feed
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/cheihkseck32-hue/solo-leveling-system/middleware"
)

// UpgradeRequired gates the websocket route behind a proper upgrade request.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// EventsSocket streams progression events (quest completions, level-ups,
// rank changes, achievement unlocks, purchases) to the authenticated user.
// The feed is advisory; a dropped connection loses nothing of record.
func EventsSocket(c *websocket.Conn) {
	defer c.Close()

	claims, err := middleware.ParseToken(c.Query("token"))
	if err != nil {
		c.WriteJSON(fiber.Map{"error": "Invalid or expired token"})
		return
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok {
		c.WriteJSON(fiber.Map{"error": "Invalid token claims"})
		return
	}
	userID := uint(rawID)

	events, cancel := svc.Hub().Subscribe(userID)
	defer cancel()

	// Drain the client side so closes are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := c.WriteJSON(event); err != nil {
				return
			}
		case <-ping.C:
			if err := c.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
