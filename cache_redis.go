package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisPoolSize    = 10
	redisDialTimeout = 5 * time.Second
	redisIOTimeout   = 3 * time.Second
)

var _ CacheBackend = (*redisBackend)(nil)

// redisBackend keeps audio lookups and health results in Redis so several
// server instances share them. Every key is namespaced by prefix.
type redisBackend struct {
	rdb    *redis.Client
	prefix string
}

// newRedisBackend connects to redisURL (redis://[:password@]host:port/db) and
// fails fast when the server does not answer a PING
func newRedisBackend(redisURL, prefix string) (*redisBackend, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.PoolSize = redisPoolSize
	opts.DialTimeout = redisDialTimeout
	opts.ReadTimeout = redisIOTimeout
	opts.WriteTimeout = redisIOTimeout

	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &redisBackend{rdb: rdb, prefix: prefix}, nil
}

func (b *redisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := b.rdb.Get(ctx, b.prefix+key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

func (b *redisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := b.rdb.Set(ctx, b.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (b *redisBackend) Delete(ctx context.Context, key string) error {
	return b.rdb.Del(ctx, b.prefix+key).Err()
}

func (b *redisBackend) Close() error {
	return b.rdb.Close()
}
