package session

import (
	"context"
	"sync"
	"time"

	apperrors "camrental/pkg/errors"
)

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore is the store used when no Redis address is configured, and in
// tests. Expired entries are dropped lazily on access.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Set(_ context.Context, token string, s Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[token] = memoryEntry{session: s, expiresAt: m.now().Add(ttl)}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, token string) (Session, error) {
	m.mu.RLock()
	entry, ok := m.entries[token]
	m.mu.RUnlock()

	if !ok {
		return Session{}, apperrors.ErrSessionNotFound
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, token)
		m.mu.Unlock()
		return Session{}, apperrors.ErrSessionNotFound
	}
	return entry.session, nil
}

func (m *MemoryStore) Del(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, token)
	return nil
}
