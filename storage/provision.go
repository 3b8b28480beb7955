// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

// Roster lists the managers that should exist. JSON is accepted too since
// it is valid YAML:
//
//	managers:
//	  - Alice
//	  - Bob
type Roster struct {
	Managers []string `yaml:"managers"`
}

// LoadRoster reads a roster file.
func LoadRoster(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("read roster: %w", err)
	}
	var roster Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return Roster{}, fmt.Errorf("parse roster %s: %w", path, err)
	}
	return roster, nil
}

// Provision adds the named managers that are not yet stored, with zeroed
// counters. Existing records are left untouched. It works on the persister
// directly and must not run while a server holds the same store.
func Provision(ctx context.Context, p Persister, names []string) ([]string, error) {
	records, err := p.Load(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(records)+len(names))
	for _, r := range records {
		seen[raffle.NameKey(r.Name)] = true
	}

	var added []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[raffle.NameKey(name)] {
			continue
		}
		seen[raffle.NameKey(name)] = true
		records = append(records, raffle.ManagerRecord{Name: name})
		added = append(added, name)
	}

	if len(added) == 0 {
		return nil, nil
	}
	if err := p.SaveAll(ctx, records); err != nil {
		return nil, err
	}
	return added, nil
}
