// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

import "math"

// Entry thresholds
const (
	IntegrationThreshold = 16
	GraduationThreshold  = 25
)

// ComputeEntries calculates raffle entries from the two counters.
// Both arguments must be non-negative; they are not validated here.
// The result saturates at math.MaxInt.
func ComputeEntries(integrations, graduations int) int {
	meetsIntegration := integrations >= IntegrationThreshold
	meetsGraduation := graduations >= GraduationThreshold

	entries := 0
	switch {
	case meetsIntegration && meetsGraduation:
		entries = 2
	case meetsIntegration || meetsGraduation:
		entries = 1
	}

	// Bonus counts from the raw threshold, overlapping the base entry.
	if integrations > IntegrationThreshold {
		entries = saturatingAdd(entries, integrations-IntegrationThreshold)
	}
	if graduations > GraduationThreshold {
		entries = saturatingAdd(entries, graduations-GraduationThreshold)
	}
	return entries
}

func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// ResolveEffectiveEntries returns the override when present, otherwise the
// computed value.
func ResolveEffectiveEntries(r ManagerRecord) int {
	if r.EntriesOverride != nil {
		return *r.EntriesOverride
	}
	return ComputeEntries(r.Integrations, r.Graduations)
}

// ShouldInvalidateOverride reports whether mutating field discards a manual
// entries override.
func ShouldInvalidateOverride(field Field) bool {
	return field.IsCounter()
}
