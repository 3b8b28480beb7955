// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

func TestFileStore_Contract(t *testing.T) {
	testPersisterContract(t, NewFileStore(filepath.Join(t.TempDir(), "nested", "managersData.json")))
}

func TestFileStore_ReadsIndentedArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "managersData.json")
	legacy := `[
  {"name": "Alice", "graduations": 25, "integrations": 16},
  {"name": "Bob", "graduations": 1, "integrations": 2, "entries": 9}
]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	records, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.False(t, records[0].HasOverride())
	require.True(t, records[1].HasOverride())
	assert.Equal(t, 9, *records[1].EntriesOverride)
}

func TestFileStore_WritesEntriesOnlyForOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "managersData.json")
	store := NewFileStore(path)

	require.NoError(t, store.SaveAll(context.Background(), []raffle.ManagerRecord{
		{Name: "Alice", Graduations: 30},
		{Name: "Bob", EntriesOverride: raffle.IntPtr(0)},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw[0], "entries")
	assert.Contains(t, raw[1], "entries")
	assert.Equal(t, float64(0), raw[1]["entries"])
}

func TestFileStore_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "managersData.json"))

	for i := 0; i < 3; i++ {
		require.NoError(t, store.SaveAll(context.Background(), sampleRecords()))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "managersData.json", entries[0].Name())
}

func TestFileStore_RejectsBadContent(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"not json", "{{{"},
		{"negative counter", `[{"name": "A", "graduations": -1, "integrations": 0}]`},
		{"negative override", `[{"name": "A", "graduations": 0, "integrations": 0, "entries": -2}]`},
		{"missing name", `[{"graduations": 1, "integrations": 0}]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "managersData.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))

			_, err := NewFileStore(path).Load(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestFileStore_SaveFailsOnUnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// Parent "directory" is a regular file
	store := NewFileStore(filepath.Join(blocker, "managersData.json"))
	assert.Error(t, store.SaveAll(context.Background(), sampleRecords()))
}
