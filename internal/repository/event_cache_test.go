package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"vedika_events/internal/domain/models"
	redisapp "vedika_events/internal/storage/redis"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisEventListCache, redismock.ClientMock) {
	t.Helper()

	db, mock := redismock.NewClientMock()

	return NewRedisEventListCache(&redisapp.Client{Client: db}, 30*time.Second), mock
}

func TestRedisEventListCache_Get(t *testing.T) {
	ctx := context.Background()

	events := []models.GalleryEvent{
		{ID: uuid.New(), EventName: "Wedding", Images: []string{"/uploads/images-1-1.jpg"}},
	}

	t.Run("hit", func(t *testing.T) {
		cache, mock := newTestCache(t)

		raw, err := json.Marshal(events)
		require.NoError(t, err)
		mock.ExpectGet(eventListKey).SetVal(string(raw))

		got, found, err := cache.Get(ctx)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, events, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		cache, mock := newTestCache(t)

		mock.ExpectGet(eventListKey).RedisNil()

		got, found, err := cache.Get(ctx)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, got)
	})

	t.Run("redis error", func(t *testing.T) {
		cache, mock := newTestCache(t)

		mock.ExpectGet(eventListKey).SetErr(errors.New("connection refused"))

		_, found, err := cache.Get(ctx)

		assert.Error(t, err)
		assert.False(t, found)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		cache, mock := newTestCache(t)

		mock.ExpectGet(eventListKey).SetVal("{not json")

		_, found, err := cache.Get(ctx)

		assert.Error(t, err)
		assert.False(t, found)
	})
}

func TestRedisEventListCache_Set(t *testing.T) {
	ctx := context.Background()

	events := []models.GalleryEvent{
		{ID: uuid.New(), EventName: "Corporate meet"},
	}

	raw, err := json.Marshal(events)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		cache, mock := newTestCache(t)

		mock.ExpectSet(eventListKey, raw, 30*time.Second).SetVal("OK")

		require.NoError(t, cache.Set(ctx, events))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error", func(t *testing.T) {
		cache, mock := newTestCache(t)

		mock.ExpectSet(eventListKey, raw, 30*time.Second).SetErr(errors.New("connection refused"))

		assert.Error(t, cache.Set(ctx, events))
	})
}

func TestRedisEventListCache_Invalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		cache, mock := newTestCache(t)

		mock.ExpectDel(eventListKey).SetVal(1)

		require.NoError(t, cache.Invalidate(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error", func(t *testing.T) {
		cache, mock := newTestCache(t)

		mock.ExpectDel(eventListKey).SetErr(errors.New("connection refused"))

		assert.Error(t, cache.Invalidate(ctx))
	})
}
