package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefixes for cached read models
	CacheKeyPrefix = "hotel:cache:"

	CacheKeyRoomStatusesAll    = "room_statuses:all"
	CacheKeyRoomStatusesActive = "room_statuses:active"
	CacheKeySettings           = "settings"

	// Timeout for individual Redis operations
	cacheOpTimeout = 2 * time.Second
)

// CacheService is a cache-aside helper over Redis. A cache failure is never fatal:
// reads fall through to the database and writes are logged.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
	Invalidate(ctx context.Context, keys ...string)
}

type redisCacheService struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func NewRedisCacheService(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) CacheService {
	return &redisCacheService{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (s *redisCacheService) Get(ctx context.Context, key string, dest interface{}) bool {
	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	raw, err := s.redisClient.Get(opCtx, CacheKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnf("Failed to read cache key %s: %+v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Warnf("Failed to decode cache key %s: %+v", key, err)
		return false
	}
	return true
}

func (s *redisCacheService) Set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warnf("Failed to encode cache key %s: %+v", key, err)
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	if err := s.redisClient.Set(opCtx, CacheKeyPrefix+key, raw, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to write cache key %s: %+v", key, err)
	}
}

func (s *redisCacheService) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	opCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheOpTimeout)
	defer cancel()

	pipe := s.redisClient.Pipeline()
	for _, key := range keys {
		pipe.Del(opCtx, CacheKeyPrefix+key)
	}
	if _, err := pipe.Exec(opCtx); err != nil {
		s.log.Warnf("Failed to invalidate cache keys %v: %+v", keys, err)
	}
}
