// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

import (
	"fmt"
	"strings"
)

// RecordStore holds manager records in load order with a lowercased name
// index. It is not safe for concurrent use; Service guards it.
type RecordStore struct {
	records []ManagerRecord
	index   map[string]int
}

// NewRecordStore builds a store from loaded records. It rejects records that
// break the at-rest invariants and names that collide case-insensitively.
func NewRecordStore(records []ManagerRecord) (*RecordStore, error) {
	s := &RecordStore{
		records: make([]ManagerRecord, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		key := NameKey(r.Name)
		if _, exists := s.index[key]; exists {
			return nil, fmt.Errorf("%w: duplicate manager name %q", ErrInvalidInput, r.Name)
		}
		s.index[key] = len(s.records)
		s.records = append(s.records, r.Clone())
	}
	return s, nil
}

// NameKey is the identity of a manager name. Every lookup goes through it.
func NameKey(name string) string {
	return strings.ToLower(name)
}

// Len returns the number of records.
func (s *RecordStore) Len() int {
	return len(s.records)
}

// lookup returns a pointer into the store for in-place mutation.
func (s *RecordStore) lookup(name string) (*ManagerRecord, bool) {
	i, ok := s.index[NameKey(name)]
	if !ok {
		return nil, false
	}
	return &s.records[i], true
}

// Snapshot returns a deep copy of every record in load order.
func (s *RecordStore) Snapshot() []ManagerRecord {
	out := make([]ManagerRecord, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}
