// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

import (
	"context"
	"fmt"
	"math"
	"sync"
)

// Saver durably replaces the stored record set.
type Saver interface {
	SaveAll(ctx context.Context, records []ManagerRecord) error
}

// Service applies mutations to a RecordStore and persists after each one.
type Service struct {
	mu    sync.Mutex
	store *RecordStore
	saver Saver
}

// NewService builds a Service over store. A nil saver skips persistence.
func NewService(store *RecordStore, saver Saver) *Service {
	return &Service{store: store, saver: saver}
}

// List returns every record with its effective entries.
func (s *Service) List() []RecordView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]RecordView, 0, s.store.Len())
	for _, r := range s.store.records {
		views = append(views, r.View())
	}
	return views
}

// Records returns a deep copy of the stored records.
func (s *Service) Records() []ManagerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

// Get looks up a single record by case-insensitive name.
func (s *Service) Get(name string) (ManagerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.store.lookup(name)
	if !ok {
		return ManagerRecord{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return rec.Clone(), nil
}

// IncrementField adds quantity to a counter and clears any override.
func (s *Service) IncrementField(ctx context.Context, name string, field Field, quantity int) (ManagerRecord, error) {
	if !field.IsCounter() {
		return ManagerRecord{}, fmt.Errorf("%w: only graduations and integrations can be incremented", ErrInvalidInput)
	}
	if quantity < 0 {
		return ManagerRecord{}, fmt.Errorf("%w: quantity must be a non-negative integer", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.store.lookup(name)
	if !ok {
		return ManagerRecord{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	counter := counterFor(rec, field)
	if *counter > math.MaxInt-quantity {
		return ManagerRecord{}, fmt.Errorf("%w: %s would overflow", ErrInvalidInput, field)
	}
	*counter += quantity
	if ShouldInvalidateOverride(field) {
		rec.EntriesOverride = nil
	}

	return rec.Clone(), s.persist(ctx)
}

// SetField writes value directly into field. Counter writes clear any
// override; an override write leaves the counters alone.
func (s *Service) SetField(ctx context.Context, name string, field Field, value int) (ManagerRecord, error) {
	field, err := ParseField(string(field))
	if err != nil {
		return ManagerRecord{}, err
	}
	if value < 0 {
		return ManagerRecord{}, fmt.Errorf("%w: newValue must be a non-negative integer", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.store.lookup(name)
	if !ok {
		return ManagerRecord{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if field == FieldEntries {
		rec.EntriesOverride = IntPtr(value)
	} else {
		*counterFor(rec, field) = value
	}
	if ShouldInvalidateOverride(field) {
		rec.EntriesOverride = nil
	}

	return rec.Clone(), s.persist(ctx)
}

// ResetAll zeroes both counters and clears the override on every record,
// then persists once.
func (s *Service) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.store.records {
		r := &s.store.records[i]
		r.Graduations = 0
		r.Integrations = 0
		r.EntriesOverride = nil
	}
	return s.persist(ctx)
}

// persist must be called with mu held.
func (s *Service) persist(ctx context.Context) error {
	if s.saver == nil {
		return nil
	}
	if err := s.saver.SaveAll(ctx, s.store.Snapshot()); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func counterFor(rec *ManagerRecord, field Field) *int {
	if field == FieldGraduations {
		return &rec.Graduations
	}
	return &rec.Integrations
}
