// Package cache stores airport lookup results so repeated autocomplete
// keystrokes do not spend provider quota.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-search/amadeus-flight-search/internal/domain"
)

const keyPrefix = "airports:"

// RedisConfig holds the connection settings for the Redis cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisAirportCache keeps airport search results in Redis as JSON.
type RedisAirportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Connect opens a Redis client and verifies it answers PING.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// NewRedisAirportCache wraps an existing client.
func NewRedisAirportCache(client *redis.Client, ttl time.Duration) *RedisAirportCache {
	return &RedisAirportCache{client: client, ttl: ttl}
}

// Get returns the cached airports for keyword. A miss, a Redis failure and a
// corrupt entry all report ok=false; only a Redis failure returns an error.
func (c *RedisAirportCache) Get(ctx context.Context, keyword string) ([]domain.AirportLocation, bool, error) {
	data, err := c.client.Get(ctx, Key(keyword)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var airports []domain.AirportLocation
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, false, nil
	}
	return airports, true, nil
}

// Set stores airports for keyword with the configured TTL.
func (c *RedisAirportCache) Set(ctx context.Context, keyword string, airports []domain.AirportLocation) error {
	if airports == nil {
		airports = []domain.AirportLocation{}
	}
	data, err := json.Marshal(airports)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, Key(keyword), data, c.ttl).Err()
}

// Close releases the Redis connection pool.
func (c *RedisAirportCache) Close() error {
	return c.client.Close()
}

// NoOpAirportCache never stores anything.
type NoOpAirportCache struct{}

// NewNoOpAirportCache returns a cache that always misses.
func NewNoOpAirportCache() *NoOpAirportCache {
	return &NoOpAirportCache{}
}

func (NoOpAirportCache) Get(context.Context, string) ([]domain.AirportLocation, bool, error) {
	return nil, false, nil
}

func (NoOpAirportCache) Set(context.Context, string, []domain.AirportLocation) error {
	return nil
}

func (NoOpAirportCache) Close() error {
	return nil
}

// Key derives the cache key for a keyword. Keywords differing only in case or
// surrounding whitespace share an entry.
func Key(keyword string) string {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	sum := sha256.Sum256([]byte(normalized))
	return keyPrefix + hex.EncodeToString(sum[:])
}
