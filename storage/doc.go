// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage persists the manager set.

Every backend implements Persister: Load once at start-up, SaveAll after
every mutation with whole-collection overwrite semantics. Open picks the
backend from the configuration and wraps it with metrics:

	p, err := storage.Open(ctx, cfg)
	records, err := p.Load(ctx)

# Backends

  - file: managersData.json, written to a temp file and renamed
  - memory: process memory only
  - sqlite: modernc.org/sqlite, one row per manager, replaced in a transaction
  - postgres / pgx: lib/pq or pgx stdlib driver, same table as sqlite
  - redis: one JSON value under a key
  - badger: one JSON value in an embedded Badger database
  - s3: one JSON object in a bucket

JSON backends share the managersData.json layout; "entries" is only
written for overrides.

# Provisioning

Managers are provisioned out of band. Provision adds names from a roster
without touching existing records:

	roster, _ := storage.LoadRoster("roster.yaml")
	added, err := storage.Provision(ctx, p, roster.Managers)
*/
package storage
