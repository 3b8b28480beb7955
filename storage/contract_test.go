// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

func sampleRecords() []raffle.ManagerRecord {
	return []raffle.ManagerRecord{
		{Name: "Zoe", Graduations: 26, Integrations: 3},
		{Name: "alice", Graduations: 0, Integrations: 17, EntriesOverride: raffle.IntPtr(0)},
		{Name: "Bob Smith", Graduations: 4, Integrations: 4, EntriesOverride: raffle.IntPtr(12)},
	}
}

// testPersisterContract checks the behaviour every backend must share.
func testPersisterContract(t *testing.T, p Persister) {
	t.Helper()
	ctx := context.Background()

	t.Run("empty load", func(t *testing.T) {
		records, err := p.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("round trip keeps order, casing and overrides", func(t *testing.T) {
		require.NoError(t, p.SaveAll(ctx, sampleRecords()))

		records, err := p.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, sampleRecords(), records)
	})

	t.Run("save replaces the whole collection", func(t *testing.T) {
		require.NoError(t, p.SaveAll(ctx, sampleRecords()))
		replacement := []raffle.ManagerRecord{{Name: "Only", Graduations: 1}}
		require.NoError(t, p.SaveAll(ctx, replacement))

		records, err := p.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, replacement, records)
	})

	t.Run("save empty set", func(t *testing.T) {
		require.NoError(t, p.SaveAll(ctx, nil))

		records, err := p.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
