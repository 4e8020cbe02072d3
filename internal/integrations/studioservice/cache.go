package studioservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StudioProvider интерфейс источника данных о студиях
// Реализуется как обычным Client, так и CachedClient
type StudioProvider interface {
	GetStudio(ctx context.Context, studioID int64) (*Studio, error)
	GetRoom(ctx context.Context, studioID, roomID int64) (*Room, error)
}

// CachedClient read-through кеш поверх клиента StudioService.
// Справочные данные студий меняются редко, а запрашиваются на каждый
// расчет свободных окон, поэтому кешируются в Redis с коротким TTL.
// Ошибки Redis не фатальны: при недоступности кеша идем напрямую в сервис
type CachedClient struct {
	inner StudioProvider
	redis *redis.Client
	ttl   time.Duration
	log   Logger
}

// NewCachedClient создает кеширующую обертку над клиентом StudioService
func NewCachedClient(inner StudioProvider, redisClient *redis.Client, ttl time.Duration, log Logger) *CachedClient {
	return &CachedClient{
		inner: inner,
		redis: redisClient,
		ttl:   ttl,
		log:   log,
	}
}

// GetStudio получает студию из кеша или из StudioService
func (c *CachedClient) GetStudio(ctx context.Context, studioID int64) (*Studio, error) {
	key := fmt.Sprintf("studio:%d", studioID)

	var cached Studio
	if ok := c.lookup(ctx, key, &cached); ok {
		return &cached, nil
	}

	studio, err := c.inner.GetStudio(ctx, studioID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, studio)
	return studio, nil
}

// GetRoom получает комнату из кеша или из StudioService
func (c *CachedClient) GetRoom(ctx context.Context, studioID, roomID int64) (*Room, error) {
	key := fmt.Sprintf("studio:%d:room:%d", studioID, roomID)

	var cached Room
	if ok := c.lookup(ctx, key, &cached); ok {
		return &cached, nil
	}

	room, err := c.inner.GetRoom(ctx, studioID, roomID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, room)
	return room, nil
}

// lookup читает значение из Redis; промах и ошибки кеша равнозначны
func (c *CachedClient) lookup(ctx context.Context, key string, dst interface{}) bool {
	val, err := c.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.log.Warn("studioservice cache: failed to get key %s: %v", key, err)
		return false
	}

	if err := json.Unmarshal([]byte(val), dst); err != nil {
		c.log.Warn("studioservice cache: failed to unmarshal key %s: %v", key, err)
		return false
	}

	return true
}

// store пишет значение в Redis; ошибка записи только логируется
func (c *CachedClient) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("studioservice cache: failed to marshal key %s: %v", key, err)
		return
	}

	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("studioservice cache: failed to set key %s: %v", key, err)
	}
}
