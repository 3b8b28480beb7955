// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/CBlanco0220/Raffle-tracker/middleware"
	"github.com/CBlanco0220/Raffle-tracker/models"
	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

type FieldHandler struct {
	svc *raffle.Service
}

func NewFieldHandler(svc *raffle.Service) *FieldHandler {
	return &FieldHandler{svc: svc}
}

// GetField handles GET /api/field
func (h *FieldHandler) GetField(w http.ResponseWriter, r *http.Request) {
	views := h.svc.List()

	positions := make([]models.FieldPosition, 0, len(views))
	for _, v := range views {
		positions = append(positions, models.FieldPosition{
			Name:    v.Name,
			Entries: v.Entries,
			Yards:   raffle.Yards(v.Entries),
			Capped:  v.Entries > raffle.MaxYards,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.FieldViewResponse{
		MaxYards:  raffle.MaxYards,
		Increment: raffle.YardIncrement,
		Markers:   raffle.YardMarkers(),
		Managers:  positions,
	})
}
