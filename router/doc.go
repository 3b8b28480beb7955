// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Raffle Tracker API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Managers:

	GET  /api/managers                     - List with effective entries
	POST /api/managers/{name}/graduations  - Add graduations
	POST /api/managers/{name}/integrations - Add integrations
	POST /api/managers/{name}/set          - Set a field (entries needs X-Override-PIN)
	POST /api/reset                        - Zero everything

Views and spreadsheets:

	GET  /api/field        - Football field positions
	GET  /api/export.csv   - Export
	GET  /api/template.csv - Import template
	POST /api/import       - Import

Static UI:

	GET / - files from cfg.PublicDir, or a text banner if it is missing

# Handler Initialization

	managerHandler := handlers.NewManagerHandler(svc, auth.NewOverrideGate(cfg.OverridePIN))
	csvHandler := handlers.NewCSVHandler(svc)
	fieldHandler := handlers.NewFieldHandler(svc)

All API routes are wrapped in middleware.WithLogging.
*/
package router
