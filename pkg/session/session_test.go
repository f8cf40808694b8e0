package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "camrental/pkg/errors"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	want := Session{UserID: 7, Role: "customer", Name: "Ann Chu"}
	require.NoError(t, store.Set(ctx, "tok", want, time.Minute))

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.Del(ctx, "tok"))
	_, err = store.Get(ctx, "tok")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	current := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	require.NoError(t, store.Set(ctx, "tok", Session{UserID: 1, Role: "customer"}, 30*time.Minute))

	_, err := store.Get(ctx, "tok")
	require.NoError(t, err)

	current = current.Add(31 * time.Minute)
	_, err = store.Get(ctx, "tok")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	// expired entries are dropped on access, not resurrected
	current = current.Add(-31 * time.Minute)
	_, err = store.Get(ctx, "tok")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestManagerLifecycle(t *testing.T) {
	ctx := context.Background()
	mgr := NewManager(NewMemoryStore(), time.Hour)

	token, err := mgr.Create(ctx, Session{UserID: 2, Role: "Manager", Name: "Mia Tan"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	s, err := mgr.Get(ctx, token)
	require.NoError(t, err)
	assert.True(t, s.LoggedIn())
	assert.Equal(t, uint64(2), s.UserID)

	s.Flash = append(s.Flash, "Welcome, Mia Tan")
	require.NoError(t, mgr.Save(ctx, token, s))

	s, err = mgr.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, []string{"Welcome, Mia Tan"}, s.Flash)

	require.NoError(t, mgr.Destroy(ctx, token))
	_, err = mgr.Get(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	// destroying an already-gone token is fine
	assert.NoError(t, mgr.Destroy(ctx, token))
}

func TestAnonymousSessionNotLoggedIn(t *testing.T) {
	assert.False(t, Session{}.LoggedIn())
	assert.False(t, Session{Flash: []string{"Logged out."}}.LoggedIn())
}
