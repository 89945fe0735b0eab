package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

func newTestSessionStore(t *testing.T) SessionStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "nested", "session.db")
	store, err := NewSessionStore(context.Background(), dbPath, logger.Nop())
	require.NoError(t, err, "NewSessionStore() should create missing directories and the database file")

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestSessionStore_SaveAndLoad(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	savedAt := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	want := Session{Email: "ivan@example.com", Token: "token-one", SavedAt: savedAt}

	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want.Email, got.Email)
	require.Equal(t, want.Token, got.Token)
	require.True(t, want.SavedAt.Equal(got.SavedAt), "saved_at should round-trip: want %v, got %v", want.SavedAt, got.SavedAt)
}

func TestSessionStore_LoadEmpty(t *testing.T) {
	store := newTestSessionStore(t)

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrNoSession)
}

func TestSessionStore_SaveOverwritesPreviousSession(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Session{Email: "first@example.com", Token: "token-one", SavedAt: time.Now()}))
	require.NoError(t, store.Save(ctx, Session{Email: "second@example.com", Token: "token-two", SavedAt: time.Now()}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "second@example.com", got.Email)
	require.Equal(t, "token-two", got.Token)
}

func TestSessionStore_Clear(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Session{Email: "ivan@example.com", Token: "token-one", SavedAt: time.Now()}))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestSessionStore_ClearEmptyStoreIsNotAnError(t *testing.T) {
	store := newTestSessionStore(t)

	require.NoError(t, store.Clear(context.Background()))
}

func TestSessionStore_ReopenKeepsSession(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "session.db")

	first, err := NewSessionStore(ctx, dbPath, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, Session{Email: "ivan@example.com", Token: "token-one", SavedAt: time.Now()}))
	require.NoError(t, first.Close())

	second, err := NewSessionStore(ctx, dbPath, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "token-one", got.Token)
}
