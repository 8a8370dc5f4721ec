// Package cache keeps public read responses (wing list, statistics) in Redis.
// Cache failures never fail a request: reads fall back to the database.
package cache

import (
	"anvaya-club/config"
	"anvaya-club/internal/global/logger"
	"anvaya-club/internal/global/sentry/tracing"
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	Namespace   = "anvaya:"
	KeyWings    = Namespace + "wings"
	PrefixStats = Namespace + "stats:"
)

// StatsKey names the statistics entry for one year, or for all years when year is nil.
func StatsKey(year *int) string {
	if year == nil {
		return PrefixStats + "all"
	}
	return PrefixStats + strconv.Itoa(*year)
}

type Cache interface {
	// GetJSON decodes the entry into dest and reports whether it existed.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	// Invalidate drops every key starting with one of the prefixes.
	Invalidate(ctx context.Context, prefixes ...string) error
}

// New returns a Redis cache, or a no-op cache when no address is configured.
func New(cfg *config.Config) (Cache, error) {
	if cfg.Redis.Addr == "" {
		return Noop{}, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if tracing.IsEnabled() {
		client.AddHook(tracing.NewRedisSentryHook(cfg.Sentry.DBSlowMs))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "ping redis at %s", cfg.Redis.Addr)
	}
	return NewRedis(client, time.Duration(cfg.Redis.TTLSeconds)*time.Second), nil
}

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "redis get %s", key)
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, errors.Wrapf(err, "decode cached %s", key)
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	return errors.Wrapf(r.client.Set(ctx, key, data, r.ttl).Err(), "redis set %s", key)
}

func (r *Redis) Invalidate(ctx context.Context, prefixes ...string) error {
	for _, prefix := range prefixes {
		iter := r.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return errors.Wrapf(err, "scan %s*", prefix)
		}
		if len(keys) == 0 {
			continue
		}
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			return errors.Wrapf(err, "delete %s*", prefix)
		}
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

type Noop struct{}

func (Noop) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) SetJSON(context.Context, string, any) error         { return nil }
func (Noop) Invalidate(context.Context, ...string) error        { return nil }

// Load returns the cached value for key, or calls load and caches its result.
func Load[T any](ctx context.Context, c Cache, key string, load func() (T, error)) (T, error) {
	var cached T
	if ok, err := c.GetJSON(ctx, key, &cached); err != nil {
		logger.New("Cache").Warn("cache read failed", "key", key, "error", err)
	} else if ok {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	if err := c.SetJSON(ctx, key, value); err != nil {
		logger.New("Cache").Warn("cache write failed", "key", key, "error", err)
	}
	return value, nil
}

// Drop invalidates prefixes and only logs failures. Entries expire on their own anyway.
func Drop(ctx context.Context, c Cache, prefixes ...string) {
	if err := c.Invalidate(ctx, prefixes...); err != nil {
		logger.New("Cache").Warn("cache invalidation failed", "prefixes", prefixes, "error", err)
	}
}
