// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/CBlanco0220/Raffle-tracker/middleware"
	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

// writeServiceError maps a raffle service error to a status code.
// badRequest is the message used for ErrInvalidInput.
func writeServiceError(w http.ResponseWriter, err error, badRequest string) {
	switch {
	case errors.Is(err, raffle.ErrInvalidInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, badRequest)
	case errors.Is(err, raffle.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Manager not found")
	case errors.Is(err, raffle.ErrPersistence):
		slog.Error("failed to persist managers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save manager data")
	default:
		slog.Error("unexpected service error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
