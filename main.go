package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/CBlanco0220/Raffle-tracker/cliparse"
	"github.com/CBlanco0220/Raffle-tracker/middleware"
	"github.com/CBlanco0220/Raffle-tracker/raffle"
	"github.com/CBlanco0220/Raffle-tracker/router"
	"github.com/CBlanco0220/Raffle-tracker/storage"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx := context.Background()

	svc, persister, err := openService(ctx, cfg)
	if err != nil {
		slog.Error("startup failed", "store", cfg.StoreType, "error", err)
		os.Exit(1)
	}
	defer persister.Close()

	if cfg.OverridePIN == "" {
		slog.Warn("no override PIN configured; anyone can set entries overrides")
	}

	// Create router
	mux := router.NewRouter(svc, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "store", cfg.StoreType)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openService opens the configured store and loads it into a Service.
// The persister is closed again if loading fails.
func openService(ctx context.Context, cfg cliparse.Config) (*raffle.Service, storage.Persister, error) {
	persister, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.StoreType, err)
	}

	records, err := persister.Load(ctx)
	if err != nil {
		persister.Close()
		return nil, nil, fmt.Errorf("load managers: %w", err)
	}
	store, err := raffle.NewRecordStore(records)
	if err != nil {
		persister.Close()
		return nil, nil, fmt.Errorf("stored managers are invalid: %w", err)
	}
	slog.Info("Managers loaded", "count", store.Len())

	return raffle.NewService(store, persister), persister, nil
}
