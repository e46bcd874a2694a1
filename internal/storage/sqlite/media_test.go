package sqlite

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardman/internal/models"
	"github.com/iudanet/cardman/internal/storage"
)

func TestMediaStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	payload := base64.StdEncoding.EncodeToString([]byte("binary payload"))

	id, err := s.CreateMedia(ctx, &models.Media{
		CardID: 1,
		Name:   "scan-front",
		Type:   "image",
		Data:   payload,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := s.GetMedia(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.CardID)
	assert.Equal(t, "scan-front", got.Name)
	assert.Equal(t, "image", got.Type)
	assert.Equal(t, payload, got.Data)
	assert.Positive(t, got.CreatedAt)

	// Payload декодируется обратно без потерь
	decoded, err := base64.StdEncoding.DecodeString(got.Data)
	require.NoError(t, err)
	assert.Equal(t, []byte("binary payload"), decoded)
}

func TestMediaStorage_GetByName(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.CreateMedia(ctx, &models.Media{
		CardID: 7,
		Name:   "handle-abc",
		Type:   "image",
		Data:   "Zm9v",
	})
	require.NoError(t, err)

	got, err := s.GetMediaByName(ctx, "handle-abc")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.CardID)

	_, err = s.GetMediaByName(ctx, "no-such-handle")
	assert.ErrorIs(t, err, storage.ErrMediaNotFound)
}

func TestMediaStorage_OrphanCardID(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Внешний ключ объявлен, но не проверяется: запись с несуществующим
	// card_id проходит без ошибки
	id, err := s.CreateMedia(ctx, &models.Media{
		CardID: 424242,
		Name:   "orphan",
		Type:   "video",
		Data:   "AAAA",
	})
	require.NoError(t, err)
	assert.Positive(t, id)
}

func TestMediaStorage_ListByCard(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	for _, name := range []string{"a", "b"} {
		_, err := s.CreateMedia(ctx, &models.Media{CardID: 5, Name: name, Type: "image", Data: "eA=="})
		require.NoError(t, err)
	}
	_, err := s.CreateMedia(ctx, &models.Media{CardID: 6, Name: "other", Type: "image", Data: "eA=="})
	require.NoError(t, err)

	list, err := s.ListMediaByCard(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	empty, err := s.ListMediaByCard(ctx, 12345)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMediaStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	id, err := s.CreateMedia(ctx, &models.Media{CardID: 1, Name: "gone", Type: "image", Data: "eA=="})
	require.NoError(t, err)

	require.NoError(t, s.DeleteMedia(ctx, id))

	_, err = s.GetMedia(ctx, id)
	assert.ErrorIs(t, err, storage.ErrMediaNotFound)

	// Повторное удаление — тихий no-op
	require.NoError(t, s.DeleteMedia(ctx, id))
}
