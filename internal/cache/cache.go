// Package cache is the cache-aside layer in front of the URL store.
//
// Entries live under "url:{id}" as MessagePack-encoded CacheRecord values
// with a fixed TTL. The cache is a disposable optimization: every failure
// (connection, corrupt value, full server) degrades to a store read and is
// never surfaced to the caller.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/go-deeplink-shortener/internal/models"
)

const keyPrefix = "url:"

// RedirectCache serves recent redirect lookups from Redis.
type RedirectCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// New connects to Redis and verifies the connection.
func New(addr, password string, db int, ttl time.Duration, logger *zap.Logger) (*RedirectCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedirectCache{client: client, ttl: ttl, logger: logger}, nil
}

// NewWithClient wires an existing client; used by tests.
func NewWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedirectCache {
	return &RedirectCache{client: client, ttl: ttl, logger: logger}
}

func cacheKey(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

// Get returns the cached record for id. Any error, including a value that no
// longer deserializes, reads as a miss.
func (c *RedirectCache) Get(ctx context.Context, id int64) (*models.CacheRecord, bool) {
	raw, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed, falling back to store",
				zap.Int64("id", id), zap.Error(err))
		}
		return nil, false
	}

	var rec models.CacheRecord
	if err := msgpack.Unmarshal(raw, &rec); err != nil {
		c.logger.Warn("cache entry corrupt, treating as miss",
			zap.Int64("id", id), zap.Error(err))
		return nil, false
	}

	return &rec, true
}

// Put stores the record with the configured TTL. Best effort: a failed write
// only costs the next request a store round trip.
func (c *RedirectCache) Put(ctx context.Context, rec *models.CacheRecord) {
	raw, err := msgpack.Marshal(rec)
	if err != nil {
		c.logger.Error("cannot serialize cache record", zap.Int64("id", rec.ID), zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, cacheKey(rec.ID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed, store load may increase",
			zap.Int64("id", rec.ID), zap.Error(err))
	}
}

// Invalidate drops the entries for the given ids. Called after soft deletes
// so a deactivated link stops being served before its TTL would expire.
func (c *RedirectCache) Invalidate(ctx context.Context, ids ...int64) {
	if len(ids) == 0 {
		return
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = cacheKey(id)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache invalidation failed, entries expire with TTL",
			zap.Int64s("ids", ids), zap.Error(err))
	}
}

// Ping checks connectivity; used by the readiness probe.
func (c *RedirectCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *RedirectCache) Close() error {
	return c.client.Close()
}
