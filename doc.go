// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Raffle Tracker server.

Raffle Tracker keeps per-manager graduation and integration counts for a
sales contest and derives raffle entries from them: one entry for reaching
16 integrations or 25 graduations, two for reaching both, and one more for
every unit past each threshold. An administrator can pin a manager's
entries to a fixed value; the next counter change removes the pin.

# Starting the Server

With no configuration the server reads and writes managersData.json in the
working directory and serves the UI from ./public on port 3000:

	go run .

Or with flags:

	go run . -p 8080 -t sqlite -d raffle.db -pin 0220

# Configuration

Every flag has an environment fallback; a .env file is loaded if present.

  - PORT (-p): Server port (default: 3000)
  - STORE_TYPE (-t): file, memory, sqlite, postgres, pgx, redis, badger, s3
  - DATABASE_URL (-d): DSN for sqlite, postgres, pgx or redis
  - DATA_FILE (-f): JSON file for the file store
  - BADGER_DIR (-badger-dir), REDIS_KEY (-redis-key)
  - S3_BUCKET, S3_KEY, S3_REGION, S3_ENDPOINT, S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY
  - OVERRIDE_PIN (-pin): required for entries overrides; empty disables the check
  - PUBLIC_DIR (-public), LOG_LEVEL (-log-level)

# Architecture

  - raffle: entry rule, record store and mutation service
  - storage: persistence backends behind one Persister interface
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request IDs, JSON helpers
  - models: Request/response types
  - csvio: spreadsheet import and export
  - auth: override PIN gate
  - metrics: Prometheus collectors
  - db: SQL schema and dialect helpers
  - cliparse: Configuration parsing
  - cmd/rafflectl: admin CLI over the same store

See package documentation for each component.
*/
package main
