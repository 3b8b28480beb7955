// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

import (
	"encoding/json"
	"fmt"
	"math"
)

// ParseCount converts a decoded JSON value into a non-negative count.
// Strings, booleans, null, fractions, NaN, infinities, negatives and values
// outside the int range are rejected with ErrInvalidInput.
func ParseCount(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return checkCount(n)
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, invalidCount(v)
		}
		return checkCount(int(n))
	case float64:
		return countFromFloat(n, v)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return ParseCount(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, invalidCount(v)
		}
		return countFromFloat(f, v)
	}
	return 0, invalidCount(v)
}

func countFromFloat(f float64, orig any) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, invalidCount(orig)
	}
	if f < 0 || f >= float64(math.MaxInt) {
		return 0, invalidCount(orig)
	}
	return int(f), nil
}

func checkCount(n int) (int, error) {
	if n < 0 {
		return 0, invalidCount(n)
	}
	return n, nil
}

func invalidCount(v any) error {
	return fmt.Errorf("%w: %v is not a non-negative integer", ErrInvalidInput, v)
}
