// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/CBlanco0220/Raffle-tracker/auth"
	"github.com/CBlanco0220/Raffle-tracker/metrics"
	"github.com/CBlanco0220/Raffle-tracker/middleware"
	"github.com/CBlanco0220/Raffle-tracker/models"
	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

type ManagerHandler struct {
	svc  *raffle.Service
	gate auth.OverrideGate
}

func NewManagerHandler(svc *raffle.Service, gate auth.OverrideGate) *ManagerHandler {
	return &ManagerHandler{svc: svc, gate: gate}
}

// ListManagers handles GET /api/managers
func (h *ManagerHandler) ListManagers(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.svc.List())
}

// AddGraduations handles POST /api/managers/{name}/graduations
func (h *ManagerHandler) AddGraduations(w http.ResponseWriter, r *http.Request) {
	h.increment(w, r, raffle.FieldGraduations, "Graduations")
}

// AddIntegrations handles POST /api/managers/{name}/integrations
func (h *ManagerHandler) AddIntegrations(w http.ResponseWriter, r *http.Request) {
	h.increment(w, r, raffle.FieldIntegrations, "Integrations")
}

func (h *ManagerHandler) increment(w http.ResponseWriter, r *http.Request, field raffle.Field, label string) {
	name := r.PathValue("name")

	var req models.IncrementRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	quantity, err := raffle.ParseCount(req.Quantity)
	if err != nil {
		metrics.RecordMutation("increment", string(field), err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid quantity")
		return
	}

	rec, err := h.svc.IncrementField(r.Context(), name, field, quantity)
	metrics.RecordMutation("increment", string(field), err)
	if err != nil {
		writeServiceError(w, err, "Invalid quantity")
		return
	}

	slog.Info("counter incremented", "manager", rec.Name, "field", field, "quantity", quantity)

	middleware.JSONResponse(w, http.StatusOK, models.MutationResponse{
		Message: fmt.Sprintf("Added %d %s to %s", quantity, label, rec.Name),
		Manager: rec,
	})
}

// SetField handles POST /api/managers/{name}/set
func (h *ManagerHandler) SetField(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var req models.SetFieldRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	field, err := raffle.ParseField(req.Field)
	if err != nil {
		metrics.RecordMutation("set", metrics.FieldInvalid, err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Field must be graduations, integrations, or entries")
		return
	}

	value, err := raffle.ParseCount(req.NewValue)
	if err != nil {
		metrics.RecordMutation("set", string(field), err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "newValue must be a non-negative number")
		return
	}

	// Only the manual override is PIN protected
	if field == raffle.FieldEntries {
		if err := h.gate.Check(r.Header.Get(auth.OverridePINHeader)); err != nil {
			metrics.RecordMutation("set", string(field), err)
			slog.Warn("override rejected", "manager", name, "error", err)
			msg := "Invalid override PIN"
			if errors.Is(err, auth.ErrPINRequired) {
				msg = "Override PIN required"
			}
			middleware.ErrorResponse(w, http.StatusForbidden, msg)
			return
		}
	}

	rec, err := h.svc.SetField(r.Context(), name, field, value)
	metrics.RecordMutation("set", string(field), err)
	if err != nil {
		writeServiceError(w, err, "newValue must be a non-negative number")
		return
	}

	slog.Info("field set", "manager", rec.Name, "field", field, "value", value)

	middleware.JSONResponse(w, http.StatusOK, models.MutationResponse{
		Message: fmt.Sprintf("Set %s's %s to %d", rec.Name, field, value),
		Manager: rec,
	})
}

// Reset handles POST /api/reset
func (h *ManagerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	err := h.svc.ResetAll(r.Context())
	metrics.RecordMutation("reset", metrics.FieldAll, err)
	if err != nil {
		writeServiceError(w, err, "Invalid request")
		return
	}

	slog.Warn("all manager data reset")

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "All manager data has been RESET to zeros!",
	})
}
