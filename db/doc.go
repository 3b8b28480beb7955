// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation for the SQL storage backends.

# Schema Creation

CreateSchema initializes the manager table:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - manager: one row per manager, keyed by the lowercased name

Columns:

  - name_key: lowercased name, primary key
  - name: name as provisioned (original casing)
  - graduations, integrations: non-negative counters
  - entries_override: manual entry count, NULL when absent
  - position: load order, so listings keep a stable order

# Dialects

The DDL is shared between SQLite and PostgreSQL. Queries are written with
? placeholders and passed through Rebind, which numbers them for
PostgreSQL:

	db.Rebind(db.DialectPostgres, "UPDATE manager SET name = ? WHERE name_key = ?")
	// UPDATE manager SET name = $1 WHERE name_key = $2
*/
package db
