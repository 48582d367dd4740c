// services/events.go - Per-user progression event hub
package services

import (
	"sync"
	"time"
)

const (
	EventQuestCompleted      = "quest_completed"
	EventLevelUp             = "level_up"
	EventRankUp              = "rank_up"
	EventAchievementUnlocked = "achievement_unlocked"
	EventItemPurchased       = "item_purchased"
)

// Event is a progression notification pushed to connected clients. Events
// are advisory; dropping one never affects stored state.
type Event struct {
	Type      string                 `json:"type"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

type subscriber struct {
	userID uint
	ch     chan Event
}

// Hub fans progression events out to websocket subscribers per user.
type Hub struct {
	mu   sync.RWMutex
	subs map[uint][]*subscriber
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint][]*subscriber)}
}

// Subscribe registers a listener for one user's events. The returned cancel
// function must be called when the connection goes away.
func (h *Hub) Subscribe(userID uint) (<-chan Event, func()) {
	sub := &subscriber{userID: userID, ch: make(chan Event, 16)}

	h.mu.Lock()
	h.subs[userID] = append(h.subs[userID], sub)
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		list := h.subs[userID]
		for i, s := range list {
			if s == sub {
				h.subs[userID] = append(list[:i], list[i+1:]...)
				close(sub.ch)
				break
			}
		}
		if len(h.subs[userID]) == 0 {
			delete(h.subs, userID)
		}
	}
	return sub.ch, cancel
}

// Publish delivers an event to every subscriber of the user. Slow consumers
// are skipped rather than blocking the request path.
func (h *Hub) Publish(userID uint, eventType string, payload map[string]interface{}) {
	event := Event{Type: eventType, Payload: payload, Timestamp: time.Now().UTC()}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs[userID] {
		select {
		case sub.ch <- event:
		default:
		}
	}
}
