// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

import (
	"fmt"
	"strings"
)

// Field names accepted on the wire
const (
	FieldGraduations  Field = "graduations"
	FieldIntegrations Field = "integrations"
	FieldEntries      Field = "entries"
)

// Field identifies a mutable attribute of a ManagerRecord.
type Field string

// IsCounter reports whether the field is one of the two counters.
func (f Field) IsCounter() bool {
	return f == FieldGraduations || f == FieldIntegrations
}

// ParseField maps a wire name to a Field. "entriesOverride" is accepted as an
// alias for the override field.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "graduations":
		return FieldGraduations, nil
	case "integrations":
		return FieldIntegrations, nil
	case "entries", "entriesoverride":
		return FieldEntries, nil
	}
	return "", fmt.Errorf("%w: field must be graduations, integrations, or entries", ErrInvalidInput)
}

// ManagerRecord is the stored state for one manager. The JSON shape matches
// the managersData.json file: "entries" is only written when an override is
// present.
type ManagerRecord struct {
	Name            string `json:"name"`
	Graduations     int    `json:"graduations"`
	Integrations    int    `json:"integrations"`
	EntriesOverride *int   `json:"entries,omitempty"`
}

// Clone returns a copy that shares no memory with r.
func (r ManagerRecord) Clone() ManagerRecord {
	if r.EntriesOverride != nil {
		v := *r.EntriesOverride
		r.EntriesOverride = &v
	}
	return r
}

// HasOverride reports whether a manual entry count is set.
func (r ManagerRecord) HasOverride() bool {
	return r.EntriesOverride != nil
}

// Validate checks the at-rest invariants of a single record.
func (r ManagerRecord) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: manager name is empty", ErrInvalidInput)
	}
	if r.Graduations < 0 || r.Integrations < 0 {
		return fmt.Errorf("%w: %s has a negative counter", ErrInvalidInput, r.Name)
	}
	if r.EntriesOverride != nil && *r.EntriesOverride < 0 {
		return fmt.Errorf("%w: %s has a negative entries override", ErrInvalidInput, r.Name)
	}
	return nil
}

// RecordView is a record as presented to readers, with entries resolved.
type RecordView struct {
	Name         string `json:"name"`
	Graduations  int    `json:"graduations"`
	Integrations int    `json:"integrations"`
	Entries      int    `json:"entries"`
	Overridden   bool   `json:"overridden,omitempty"`
}

// View resolves r into a RecordView.
func (r ManagerRecord) View() RecordView {
	return RecordView{
		Name:         r.Name,
		Graduations:  r.Graduations,
		Integrations: r.Integrations,
		Entries:      ResolveEffectiveEntries(r),
		Overridden:   r.HasOverride(),
	}
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
