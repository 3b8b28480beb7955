// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "github.com/lib/pq"              // registers the "postgres" driver
	_ "modernc.org/sqlite"             // pure go sqlite driver

	"github.com/CBlanco0220/Raffle-tracker/db"
	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

// database/sql driver names
const (
	DriverSQLite = "sqlite"
	DriverPQ     = "postgres"
	DriverPgx    = "pgx"
)

// SQLStore keeps one row per manager. SaveAll replaces every row inside a
// single transaction.
type SQLStore struct {
	db      *sql.DB
	dialect string
}

// OpenSQLite opens (or creates) a SQLite database at dsn.
func OpenSQLite(ctx context.Context, dsn string) (*SQLStore, error) {
	return openSQL(ctx, DriverSQLite, db.DialectSQLite, dsn)
}

// OpenPostgres connects with either the lib/pq or the pgx driver.
func OpenPostgres(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	if driver != DriverPQ && driver != DriverPgx {
		return nil, fmt.Errorf("unsupported postgres driver %q", driver)
	}
	return openSQL(ctx, driver, db.DialectPostgres, dsn)
}

func openSQL(ctx context.Context, driver, dialect, dsn string) (*SQLStore, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if dialect == db.DialectSQLite {
		// One connection keeps ":memory:" databases shared and avoids
		// SQLITE_BUSY between writers.
		conn.SetMaxOpenConns(1)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	if err := db.CreateSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}
	return &SQLStore{db: conn, dialect: dialect}, nil
}

// DB exposes the underlying sql.DB for tests.
func (s *SQLStore) DB() *sql.DB { return s.db }

func (s *SQLStore) Load(ctx context.Context) ([]raffle.ManagerRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, graduations, integrations, entries_override
		FROM manager
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("select managers: %w", err)
	}
	defer rows.Close()

	records := []raffle.ManagerRecord{}
	for rows.Next() {
		var (
			r        raffle.ManagerRecord
			override sql.NullInt64
		)
		if err := rows.Scan(&r.Name, &r.Graduations, &r.Integrations, &override); err != nil {
			return nil, fmt.Errorf("scan manager: %w", err)
		}
		if override.Valid {
			r.EntriesOverride = raffle.IntPtr(int(override.Int64))
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate managers: %w", err)
	}
	return records, nil
}

func (s *SQLStore) SaveAll(ctx context.Context, records []raffle.ManagerRecord) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM manager`); err != nil {
		return fmt.Errorf("clear managers: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, db.Rebind(s.dialect, `
		INSERT INTO manager (name_key, name, graduations, integrations, entries_override, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		var override sql.NullInt64
		if r.EntriesOverride != nil {
			override = sql.NullInt64{Int64: int64(*r.EntriesOverride), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, raffle.NameKey(r.Name), r.Name, r.Graduations, r.Integrations, override, i); err != nil {
			return fmt.Errorf("insert %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
