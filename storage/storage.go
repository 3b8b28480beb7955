// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/CBlanco0220/Raffle-tracker/cliparse"
	"github.com/CBlanco0220/Raffle-tracker/metrics"
	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

// Persister loads the manager set at start-up and replaces it wholesale
// after every mutation.
type Persister interface {
	Load(ctx context.Context) ([]raffle.ManagerRecord, error)
	SaveAll(ctx context.Context, records []raffle.ManagerRecord) error
	Close() error
}

// Open builds the persister selected by cfg.StoreType. Every backend is
// wrapped with metrics instrumentation.
func Open(ctx context.Context, cfg cliparse.Config) (Persister, error) {
	var (
		p   Persister
		err error
	)

	switch cfg.StoreType {
	case cliparse.StoreFile:
		p = NewFileStore(cfg.DataFile)
	case cliparse.StoreMemory:
		p = NewMemoryStore(nil)
	case cliparse.StoreSQLite:
		p, err = OpenSQLite(ctx, cfg.DatabaseURL)
	case cliparse.StorePostgres:
		p, err = OpenPostgres(ctx, DriverPQ, cfg.DatabaseURL)
	case cliparse.StorePgx:
		p, err = OpenPostgres(ctx, DriverPgx, cfg.DatabaseURL)
	case cliparse.StoreRedis:
		p, err = OpenRedis(ctx, cfg.DatabaseURL, cfg.RedisKey)
	case cliparse.StoreBadger:
		p, err = OpenBadger(BadgerConfig{Path: cfg.BadgerDir, SyncWrites: true, Logger: slog.Default()})
	case cliparse.StoreS3:
		p, err = OpenS3(ctx, S3Config{
			Bucket:          cfg.S3Bucket,
			Key:             cfg.S3Key,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("store opened", "type", cfg.StoreType)
	return Instrument(cfg.StoreType, p), nil
}

// Instrument wraps p so that every Load and SaveAll is timed.
func Instrument(backend string, p Persister) Persister {
	return &instrumented{backend: backend, next: p}
}

type instrumented struct {
	backend string
	next    Persister
}

func (i *instrumented) Load(ctx context.Context) ([]raffle.ManagerRecord, error) {
	start := time.Now()
	records, err := i.next.Load(ctx)
	metrics.ObservePersist(i.backend, "load", start, err)
	return records, err
}

func (i *instrumented) SaveAll(ctx context.Context, records []raffle.ManagerRecord) error {
	start := time.Now()
	err := i.next.SaveAll(ctx, records)
	metrics.ObservePersist(i.backend, "save", start, err)
	if err != nil {
		slog.Error("failed to save managers", "backend", i.backend, "error", err)
	}
	return err
}

func (i *instrumented) Close() error {
	return i.next.Close()
}
