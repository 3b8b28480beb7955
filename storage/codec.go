// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"encoding/json"
	"fmt"

	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

// encodeRecords renders the managersData.json format: an indented array,
// "entries" present only for overrides.
func encodeRecords(records []raffle.ManagerRecord) ([]byte, error) {
	if records == nil {
		records = []raffle.ManagerRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode managers: %w", err)
	}
	return append(data, '\n'), nil
}

func decodeRecords(data []byte) ([]raffle.ManagerRecord, error) {
	var records []raffle.ManagerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode managers: %w", err)
	}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("decode managers: %w", err)
		}
	}
	return records, nil
}

// cloneRecords deep-copies records so callers cannot alias stored state.
func cloneRecords(records []raffle.ManagerRecord) []raffle.ManagerRecord {
	out := make([]raffle.ManagerRecord, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
