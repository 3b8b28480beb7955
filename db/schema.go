// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The same DDL runs on SQLite and PostgreSQL.
const schema = `
CREATE TABLE IF NOT EXISTS manager (
    name_key TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    graduations BIGINT NOT NULL DEFAULT 0 CHECK (graduations >= 0),
    integrations BIGINT NOT NULL DEFAULT 0 CHECK (integrations >= 0),
    entries_override BIGINT CHECK (entries_override IS NULL OR entries_override >= 0),
    position BIGINT NOT NULL
);
`
