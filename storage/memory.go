// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"sync"

	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

// MemoryStore keeps the manager set in process memory. State is lost on
// exit; it backs tests and throwaway runs.
type MemoryStore struct {
	mu      sync.Mutex
	records []raffle.ManagerRecord
	saves   int
	failErr error
}

func NewMemoryStore(records []raffle.ManagerRecord) *MemoryStore {
	return &MemoryStore{records: cloneRecords(records)}
}

func (m *MemoryStore) Load(ctx context.Context) ([]raffle.ManagerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneRecords(m.records), nil
}

func (m *MemoryStore) SaveAll(ctx context.Context, records []raffle.ManagerRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.records = cloneRecords(records)
	m.saves++
	return nil
}

func (m *MemoryStore) Close() error { return nil }

// Saves returns how many successful SaveAll calls were made.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// FailWith makes subsequent saves return err; nil restores normal behaviour.
func (m *MemoryStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}
