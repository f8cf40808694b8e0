// Package session implements server-side sessions addressed by an opaque
// token. The token is the only state the browser ever holds; identity, role
// and flash messages live in the store.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "camrental/pkg/errors"
)

// Session is the record kept server-side for one browser.
type Session struct {
	UserID uint64   `json:"user_id"`
	Role   string   `json:"role"`
	Name   string   `json:"name"`
	Flash  []string `json:"flash,omitempty"`
}

// LoggedIn reports whether the session carries an authenticated identity.
func (s Session) LoggedIn() bool {
	return s.Role != ""
}

// Store persists sessions by token. Get returns apperrors.ErrSessionNotFound
// for unknown or expired tokens.
type Store interface {
	Set(ctx context.Context, token string, s Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (Session, error)
	Del(ctx context.Context, token string) error
}

type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Create stores s under a fresh opaque token and returns the token.
func (m *Manager) Create(ctx context.Context, s Session) (string, error) {
	token := uuid.NewString()
	if err := m.store.Set(ctx, token, s, m.ttl); err != nil {
		return "", err
	}
	return token, nil
}

func (m *Manager) Get(ctx context.Context, token string) (Session, error) {
	return m.store.Get(ctx, token)
}

// Save rewrites the session under its existing token, refreshing the TTL.
func (m *Manager) Save(ctx context.Context, token string, s Session) error {
	return m.store.Set(ctx, token, s, m.ttl)
}

// Destroy removes the session. Destroying an unknown token is not an error.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	err := m.store.Del(ctx, token)
	if err == apperrors.ErrSessionNotFound {
		return nil
	}
	return err
}
