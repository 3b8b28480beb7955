// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package raffle holds the manager records, the entry rule, and the mutation
service that keeps manual overrides consistent with the counters.

# Entry Rule

ComputeEntries turns the two counters into a raffle entry count:

	base  = 2 if integrations >= 16 and graduations >= 25
	        1 if exactly one threshold is met
	        0 otherwise
	bonus = max(0, integrations-16) + max(0, graduations-25)
	entries = base + bonus

The bonus counts every unit above the raw threshold, so the unit that
crosses a threshold is credited to both the base and, once exceeded, the
bonus. (17, 25) yields 3, not 2.

# Overrides

A record may carry a manual entry count (EntriesOverride). While present it
replaces the computed value. Any change to graduations or integrations,
whether by increment or direct set, discards it:

	svc.SetField(ctx, "alice", raffle.FieldEntries, 40)      // entries = 40
	svc.IncrementField(ctx, "Alice", raffle.FieldGraduations, 1) // override gone

# Service

Service serializes every mutation behind one mutex and asks its Saver to
store the full record set after each change. Validation and lookup happen
before any state is touched:

  - ErrInvalidInput: negative, non-integral, or otherwise malformed values
  - ErrNotFound: no manager with that name (case-insensitive)
  - ErrPersistence: the Saver failed; the in-memory change is kept

Persistence failures are not rolled back. Callers see the error and the
updated record together.
*/
package raffle
