// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a validated Config:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Other front ends (rafflectl) fill a Config from their own flags and call
Resolve to apply the same environment fallbacks, defaults and validation.

# Config Fields

  - Port: Server listen port (default: 3000)
  - StoreType: file, memory, sqlite, postgres, pgx, redis, badger, s3 (default: file)
  - DatabaseURL: Connection string for sqlite, postgres, pgx and redis
  - DataFile: JSON file for the file store (default: managersData.json)
  - BadgerDir: Badger directory (default: data/badger)
  - RedisKey: Redis key (default: raffle:managers)
  - S3Bucket, S3Key, S3Region, S3Endpoint: object store location
  - OverridePIN: PIN required to override entries (empty: no gate)
  - PublicDir: Browser UI directory (default: public)
  - LogLevel: debug, info, warn, error (default: info)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	STORE_TYPE    → -t
	DATABASE_URL  → -d
	DATA_FILE     → -f
	BADGER_DIR    → --badger-dir
	REDIS_KEY     → --redis-key
	S3_BUCKET     → --s3-bucket
	S3_KEY        → --s3-key
	S3_REGION     → --s3-region
	S3_ENDPOINT   → --s3-endpoint
	OVERRIDE_PIN  → --pin
	PUBLIC_DIR    → --public
	LOG_LEVEL     → --log-level

S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY are read from the environment
only. A .env file in the working directory is loaded first; it never
overrides variables that are already set. CLI flags take precedence over
both.

# Validation

ParseFlags returns an error if:

  - the store type or log level is unknown
  - the port is outside 1-65535
  - DATABASE_URL is missing for sqlite, postgres, pgx or redis
  - S3_BUCKET is missing for the s3 store
*/
package cliparse
