package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardman/internal/session"
)

// создаем тестовое BoltDB хранилище сессии
func createTestSessionStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "session_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
	}

	return store, cleanup
}

func TestStorage_PinRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestSessionStorage(t)
	defer cleanup()

	// До сохранения GetPin выдает ErrPinNotSet
	_, err := store.GetPin(ctx)
	assert.ErrorIs(t, err, session.ErrPinNotSet)

	// Сохраняем и читаем PIN
	require.NoError(t, store.SavePin(ctx, "2208"))

	pin, err := store.GetPin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2208", pin)

	// Перезапись заменяет значение
	require.NoError(t, store.SavePin(ctx, "1111"))

	pin, err = store.GetPin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1111", pin)
}

func TestStorage_AuthenticatedFlag(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestSessionStorage(t)
	defer cleanup()

	// Отсутствующий флаг читается как false, не ошибка
	authenticated, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authenticated)

	require.NoError(t, store.SetAuthenticated(ctx, true))

	authenticated, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authenticated)

	require.NoError(t, store.SetAuthenticated(ctx, false))

	authenticated, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authenticated)
}

func TestStorage_StateSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "session.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	require.NoError(t, store.SavePin(ctx, "2208"))
	require.NoError(t, store.SetAuthenticated(ctx, true))
	require.NoError(t, store.Close())

	// Состояние наследуется между запусками процесса:
	// незакрытая явным logout сессия остается активной
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	pin, err := reopened.GetPin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2208", pin)

	authenticated, err := reopened.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authenticated)
}
