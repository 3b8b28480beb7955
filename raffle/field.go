// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

// Football field geometry used by the progress view. One entry is one yard.
const (
	MaxYards      = 150
	YardIncrement = 10
)

// Yards converts an entry count to a field position, clamped to MaxYards.
func Yards(entries int) int {
	switch {
	case entries < 0:
		return 0
	case entries > MaxYards:
		return MaxYards
	}
	return entries
}

// YardMarkers returns the line markers from 0 to MaxYards inclusive.
func YardMarkers() []int {
	markers := make([]int, 0, MaxYards/YardIncrement+1)
	for y := 0; y <= MaxYards; y += YardIncrement {
		markers = append(markers, y)
	}
	return markers
}
