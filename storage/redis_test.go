// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Contract(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := NewRedisStore(context.Background(), &redis.Options{Addr: mr.Addr()}, "test:managers")
	require.NoError(t, err)
	defer store.Close()

	testPersisterContract(t, store)
}

func TestRedisStore_StoresJSONUnderKey(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	store, err := OpenRedis(ctx, "redis://"+mr.Addr(), "raffle:managers")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SaveAll(ctx, sampleRecords()))

	raw, err := mr.Get("raffle:managers")
	require.NoError(t, err)
	assert.Contains(t, raw, `"name": "Bob Smith"`)
	assert.Contains(t, raw, `"entries": 12`)
}

func TestRedisStore_CorruptValue(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("raffle:managers", "not json"))

	store, err := NewRedisStore(context.Background(), &redis.Options{Addr: mr.Addr()}, "raffle:managers")
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load(context.Background())
	assert.Error(t, err)
}

func TestRedisStore_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	store, err := NewRedisStore(ctx, &redis.Options{Addr: mr.Addr(), MaxRetries: -1}, "raffle:managers")
	require.NoError(t, err)
	defer store.Close()

	mr.Close()
	assert.Error(t, store.SaveAll(ctx, sampleRecords()))
}

func TestOpenRedis_BadURL(t *testing.T) {
	_, err := OpenRedis(context.Background(), "http://not-redis", "k")
	assert.Error(t, err)
}
