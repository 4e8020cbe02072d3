package studioservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	studio      *Studio
	room        *Room
	err         error
	studioCalls int
	roomCalls   int
}

func (f *fakeProvider) GetStudio(ctx context.Context, studioID int64) (*Studio, error) {
	f.studioCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.studio, nil
}

func (f *fakeProvider) GetRoom(ctx context.Context, studioID, roomID int64) (*Room, error) {
	f.roomCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.room, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestCache(t *testing.T, inner StudioProvider) (*CachedClient, *miniredis.Miniredis) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCachedClient(inner, client, time.Minute, nopLogger{}), s
}

func TestCachedClient_GetStudio(t *testing.T) {
	ctx := context.Background()

	t.Run("second call is served from cache", func(t *testing.T) {
		inner := &fakeProvider{studio: &Studio{ID: 1, Name: "Lensroom Center", OwnerID: 10}}
		cache, _ := newTestCache(t, inner)

		first, err := cache.GetStudio(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Lensroom Center", first.Name)

		second, err := cache.GetStudio(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, inner.studioCalls)
	})

	t.Run("expired entry falls back to service", func(t *testing.T) {
		inner := &fakeProvider{studio: &Studio{ID: 2, Name: "Attic"}}
		cache, s := newTestCache(t, inner)

		_, err := cache.GetStudio(ctx, 2)
		require.NoError(t, err)

		s.FastForward(2 * time.Minute)

		_, err = cache.GetStudio(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, inner.studioCalls)
	})

	t.Run("service errors are not cached", func(t *testing.T) {
		inner := &fakeProvider{err: ErrStudioNotFound}
		cache, _ := newTestCache(t, inner)

		_, err := cache.GetStudio(ctx, 3)
		assert.ErrorIs(t, err, ErrStudioNotFound)

		_, err = cache.GetStudio(ctx, 3)
		assert.ErrorIs(t, err, ErrStudioNotFound)
		assert.Equal(t, 2, inner.studioCalls)
	})

	t.Run("redis down degrades to direct calls", func(t *testing.T) {
		inner := &fakeProvider{studio: &Studio{ID: 4, Name: "Loft"}}
		cache, s := newTestCache(t, inner)
		s.Close()

		got, err := cache.GetStudio(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, "Loft", got.Name)
	})
}

func TestCachedClient_GetRoom(t *testing.T) {
	ctx := context.Background()
	inner := &fakeProvider{room: &Room{ID: 7, StudioID: 1, Name: "Cyclorama"}}
	cache, _ := newTestCache(t, inner)

	first, err := cache.GetRoom(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, "Cyclorama", first.Name)

	second, err := cache.GetRoom(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.roomCalls)
}

func TestCachedClient_DifferentKeysDoNotCollide(t *testing.T) {
	ctx := context.Background()
	inner := &fakeProvider{
		studio: &Studio{ID: 1, Name: "Main"},
		room:   &Room{ID: 1, StudioID: 1, Name: "Hall"},
	}
	cache, _ := newTestCache(t, inner)

	_, err := cache.GetStudio(ctx, 1)
	require.NoError(t, err)

	room, err := cache.GetRoom(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Hall", room.Name)

	if errors.Is(err, ErrRoomNotFound) {
		t.Fatal("unexpected room lookup failure")
	}
}
