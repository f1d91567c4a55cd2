package cache

import (
	"context"
	"sync"
	"time"

	"github.com/truthos/meeting-intel/internal/domain/entities"
)

// MemoryStore is a simple in-memory session store with expiration.
// Suitable for development and single-instance deployments; production
// should configure the Redis store so sessions survive restarts.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
}

type memoryItem struct {
	session    *entities.Session
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired()

	return store
}

// Set stores a session with expiration
func (ms *MemoryStore) Set(_ context.Context, token string, session *entities.Session, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[token] = &memoryItem{
		session:    session,
		expireTime: time.Now().Add(ttl),
	}
	return nil
}

// Get retrieves a session by token (returns nil if not found or expired)
func (ms *MemoryStore) Get(_ context.Context, token string) (*entities.Session, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[token]
	if !exists {
		return nil, nil
	}
	if time.Now().After(item.expireTime) {
		return nil, nil
	}
	return item.session, nil
}

// Delete removes a session
func (ms *MemoryStore) Delete(_ context.Context, token string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, token)
	return nil
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ms.mu.Lock()
		now := time.Now()
		for token, item := range ms.items {
			if now.After(item.expireTime) {
				delete(ms.items, token)
			}
		}
		ms.mu.Unlock()
	}
}
