// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/CBlanco0220/Raffle-tracker/auth"
	"github.com/CBlanco0220/Raffle-tracker/cliparse"
	"github.com/CBlanco0220/Raffle-tracker/handlers"
	"github.com/CBlanco0220/Raffle-tracker/metrics"
	"github.com/CBlanco0220/Raffle-tracker/middleware"
	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

func NewRouter(svc *raffle.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	managerHandler := handlers.NewManagerHandler(svc, auth.NewOverrideGate(cfg.OverridePIN))
	csvHandler := handlers.NewCSVHandler(svc)
	fieldHandler := handlers.NewFieldHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Managers
	mux.HandleFunc("GET /api/managers", middleware.WithLogging(managerHandler.ListManagers))
	mux.HandleFunc("POST /api/managers/{name}/graduations", middleware.WithLogging(managerHandler.AddGraduations))
	mux.HandleFunc("POST /api/managers/{name}/integrations", middleware.WithLogging(managerHandler.AddIntegrations))
	mux.HandleFunc("POST /api/managers/{name}/set", middleware.WithLogging(managerHandler.SetField))
	mux.HandleFunc("POST /api/reset", middleware.WithLogging(managerHandler.Reset))

	// Views and spreadsheets
	mux.HandleFunc("GET /api/field", middleware.WithLogging(fieldHandler.GetField))
	mux.HandleFunc("GET /api/export.csv", middleware.WithLogging(csvHandler.Export))
	mux.HandleFunc("GET /api/template.csv", middleware.WithLogging(csvHandler.Template))
	mux.HandleFunc("POST /api/import", middleware.WithLogging(csvHandler.Import))

	// Static UI, or a plain banner when there is none
	if info, err := os.Stat(cfg.PublicDir); cfg.PublicDir != "" && err == nil && info.IsDir() {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.PublicDir)))
	} else {
		if cfg.PublicDir != "" {
			slog.Warn("public directory not found, serving API only", "dir", cfg.PublicDir)
		}
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/" {
				http.NotFound(w, r)
				return
			}
			w.Write([]byte("raffle-tracker API v1"))
		})
	}

	return mux
}
