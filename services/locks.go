// services/locks.go - Per-user write serialization
package services

import (
	"sync"
)

// userLocks hands out one mutex per user so profile mutations (quest
// completion, purchases, level cascades) run single-writer even when the
// storage backend lacks row locking.
type userLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[uint]*sync.Mutex)}
}

func (ul *userLocks) get(userID uint) *sync.Mutex {
	ul.mu.Lock()
	defer ul.mu.Unlock()

	if m, ok := ul.locks[userID]; ok {
		return m
	}
	m := &sync.Mutex{}
	ul.locks[userID] = m
	return m
}

// Lock acquires the user's mutex and returns the unlock function.
func (ul *userLocks) Lock(userID uint) func() {
	m := ul.get(userID)
	m.Lock()
	return m.Unlock
}
