// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Raffle Tracker API.

# Handler Types

Each handler is a struct over the shared *raffle.Service:

  - ManagerHandler: listing, increments, direct sets, reset
  - CSVHandler: export, template, import
  - FieldHandler: football field progress view

Handlers are created via constructor functions:

	managerHandler := handlers.NewManagerHandler(svc, auth.NewOverrideGate(cfg.OverridePIN))

# Manager Routes

	GET  /api/managers                     → ListManagers
	POST /api/managers/{name}/graduations  → AddGraduations  {"quantity": n}
	POST /api/managers/{name}/integrations → AddIntegrations {"quantity": n}
	POST /api/managers/{name}/set          → SetField {"field": f, "newValue": n}
	POST /api/reset                        → Reset

Names match case-insensitively. Increments and counter sets clear any
manual entries override. Setting "entries" requires the X-Override-PIN
header when a PIN is configured.

# Error Mapping

	raffle.ErrInvalidInput → 400
	auth.ErrInvalidPIN     → 403
	raffle.ErrNotFound     → 404
	raffle.ErrPersistence  → 500

A 500 after a mutation means the in-memory change was applied but the
store rejected it; the next successful save writes it out.

# Spreadsheets

	GET  /api/export.csv   → Export
	GET  /api/template.csv → Template
	POST /api/import       → Import (raw CSV body, 1 MiB max)

See package csvio for the formats.
*/
package handlers
