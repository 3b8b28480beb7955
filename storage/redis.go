// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

// RedisStore keeps the manager set as one JSON value under a single key.
// SET replaces it atomically.
type RedisStore struct {
	client *redis.Client
	key    string
}

// OpenRedis connects using a redis:// URL.
func OpenRedis(ctx context.Context, url, key string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisStore(ctx, opts, key)
}

// NewRedisStore connects with explicit options and verifies the connection.
func NewRedisStore(ctx context.Context, opts *redis.Options, key string) (*RedisStore, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client, key: key}, nil
}

// RedisClient exposes the client for tests.
func (s *RedisStore) RedisClient() *redis.Client { return s.client }

func (s *RedisStore) Load(ctx context.Context) ([]raffle.ManagerRecord, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []raffle.ManagerRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.key, err)
	}
	return decodeRecords(data)
}

func (s *RedisStore) SaveAll(ctx context.Context, records []raffle.ManagerRecord) error {
	data, err := encodeRecords(records)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
