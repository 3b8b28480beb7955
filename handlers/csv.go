// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/CBlanco0220/Raffle-tracker/csvio"
	"github.com/CBlanco0220/Raffle-tracker/metrics"
	"github.com/CBlanco0220/Raffle-tracker/middleware"
	"github.com/CBlanco0220/Raffle-tracker/models"
	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

// MaxImportBytes caps the size of an uploaded CSV
const MaxImportBytes = 1 << 20

type CSVHandler struct {
	svc *raffle.Service
}

func NewCSVHandler(svc *raffle.Service) *CSVHandler {
	return &CSVHandler{svc: svc}
}

// Export handles GET /api/export.csv
func (h *CSVHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := csvio.WriteExport(&buf, h.svc.List()); err != nil {
		slog.Error("failed to write export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export CSV")
		return
	}
	writeCSV(w, "managers_export.csv", buf.Bytes())
}

// Template handles GET /api/template.csv
func (h *CSVHandler) Template(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := csvio.WriteTemplate(&buf, h.svc.List()); err != nil {
		slog.Error("failed to write template", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate template CSV")
		return
	}
	writeCSV(w, "template.csv", buf.Bytes())
}

// Import handles POST /api/import. The body is the raw CSV file.
func (h *CSVHandler) Import(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, MaxImportBytes)
	defer body.Close()

	rows, skipped, err := csvio.ParseImport(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "CSV file too large")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := csvio.Apply(r.Context(), h.svc, rows)
	metrics.RecordMutation("import", metrics.FieldAll, err)
	if err != nil {
		writeServiceError(w, err, "Invalid CSV row")
		return
	}

	all := append(skipped, res.Skipped...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Line < all[j].Line })

	resp := models.ImportResponse{Applied: res.Applied, Skipped: make([]models.SkippedRow, 0, len(all))}
	for _, s := range all {
		resp.Skipped = append(resp.Skipped, models.SkippedRow{Line: s.Line, Name: s.Name, Reason: s.Reason})
	}

	slog.Info("csv imported", "applied", resp.Applied, "skipped", len(resp.Skipped))
	middleware.JSONResponse(w, http.StatusOK, resp)
}

func writeCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write CSV response", "error", err)
	}
}
