// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CBlanco0220/Raffle-tracker/auth"
	"github.com/CBlanco0220/Raffle-tracker/models"
	"github.com/CBlanco0220/Raffle-tracker/raffle"
	"github.com/CBlanco0220/Raffle-tracker/storage"
	"github.com/CBlanco0220/Raffle-tracker/testutil"
)

// loadService builds a service over a file store, the way main does.
func loadService(t *testing.T, path string) *raffle.Service {
	t.Helper()
	fs := storage.NewFileStore(path)
	records, err := fs.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	store, err := raffle.NewRecordStore(records)
	if err != nil {
		t.Fatalf("NewRecordStore: %v", err)
	}
	return raffle.NewService(store, fs)
}

func getManager(t *testing.T, h *ManagerHandler, name string) raffle.RecordView {
	t.Helper()
	w := httptest.NewRecorder()
	h.ListManagers(w, testutil.MakeRequest("GET", "/api/managers", nil, nil))
	var views []raffle.RecordView
	testutil.AssertJSON(t, w, &views)
	for _, v := range views {
		if strings.EqualFold(v.Name, name) {
			return v
		}
	}
	t.Fatalf("manager %s not listed", name)
	return raffle.RecordView{}
}

func post(t *testing.T, fn http.HandlerFunc, path, name string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.MakeRequest("POST", path, body, headers)
	if name != "" {
		req.SetPathValue("name", name)
	}
	w := httptest.NewRecorder()
	fn(w, req)
	return w
}

// TestFullRaffleWorkflow walks a season end to end:
// 1. Provision managers into a data file
// 2. Add activity until thresholds are crossed
// 3. Override entries with the PIN
// 4. New activity clears the override
// 5. Import a spreadsheet
// 6. Restart and verify state survived
// 7. Reset
func TestFullRaffleWorkflow(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "managersData.json")
	gate := auth.NewOverrideGate(testutil.TestPIN)

	// Step 1: Provision
	added, err := storage.Provision(ctx, storage.NewFileStore(path), []string{"Alice", "Bob"})
	if err != nil || len(added) != 2 {
		t.Fatalf("Step 1 - Provision failed: %v %v", added, err)
	}

	svc := loadService(t, path)
	h := NewManagerHandler(svc, gate)

	// Step 2: Cross both thresholds for Alice
	w := post(t, h.AddGraduations, "/api/managers/Alice/graduations", "Alice", map[string]int{"quantity": 27}, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	w = post(t, h.AddIntegrations, "/api/managers/Alice/integrations", "Alice", map[string]int{"quantity": 16}, nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	if got := getManager(t, h, "Alice").Entries; got != 4 {
		t.Fatalf("Step 2 - Expected 4 entries, got %d", got)
	}
	t.Log("Step 2 - Alice has 4 entries")

	// Step 3: Override
	w = post(t, h.SetField, "/api/managers/Alice/set", "Alice",
		map[string]interface{}{"field": "entries", "newValue": 10},
		map[string]string{auth.OverridePINHeader: testutil.TestPIN})
	testutil.AssertStatus(t, w, http.StatusOK)
	if v := getManager(t, h, "Alice"); v.Entries != 10 || !v.Overridden {
		t.Fatalf("Step 3 - Expected override of 10, got %+v", v)
	}

	// Step 4: Activity clears it
	w = post(t, h.AddIntegrations, "/api/managers/alice/integrations", "alice", map[string]int{"quantity": 1}, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	if v := getManager(t, h, "Alice"); v.Entries != 5 || v.Overridden {
		t.Fatalf("Step 4 - Expected computed 5 entries, got %+v", v)
	}

	// Step 5: Import
	csvHandler := NewCSVHandler(svc)
	w = httptest.NewRecorder()
	csvHandler.Import(w, testutil.MakeRawRequest("POST", "/api/import", "text/csv",
		"Name,Graduations,Integrations\nBob,25,16\n"))
	testutil.AssertStatus(t, w, http.StatusOK)
	var imp models.ImportResponse
	testutil.AssertJSON(t, w, &imp)
	if imp.Applied != 1 {
		t.Fatalf("Step 5 - Expected 1 applied row, got %d", imp.Applied)
	}

	// Step 6: Restart
	restarted := NewManagerHandler(loadService(t, path), gate)
	if v := getManager(t, restarted, "Bob"); v.Entries != 2 {
		t.Fatalf("Step 6 - Expected Bob to have 2 entries after restart, got %+v", v)
	}
	if v := getManager(t, restarted, "Alice"); v.Graduations != 27 || v.Integrations != 17 {
		t.Fatalf("Step 6 - Alice state lost on restart: %+v", v)
	}

	// Step 7: Reset
	w = post(t, restarted.Reset, "/api/reset", "", nil, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	for _, name := range []string{"Alice", "Bob"} {
		if v := getManager(t, restarted, name); v.Entries != 0 || v.Graduations != 0 || v.Integrations != 0 {
			t.Errorf("Step 7 - %s not reset: %+v", name, v)
		}
	}
}

// TestOverrideSurvivesRestart checks that a zero override is persisted
// with explicit presence
func TestOverrideSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "managersData.json")
	if _, err := storage.Provision(context.Background(), storage.NewFileStore(path), []string{"Alice"}); err != nil {
		t.Fatalf("Provision: %v", err)
	}

	svc := loadService(t, path)
	if _, err := svc.IncrementField(context.Background(), "Alice", raffle.FieldGraduations, 30); err != nil {
		t.Fatalf("IncrementField: %v", err)
	}
	if _, err := svc.SetField(context.Background(), "Alice", raffle.FieldEntries, 0); err != nil {
		t.Fatalf("SetField: %v", err)
	}

	h := NewManagerHandler(loadService(t, path), auth.NewOverrideGate(""))
	v := getManager(t, h, "Alice")
	if v.Entries != 0 || !v.Overridden {
		t.Errorf("Expected persisted zero override, got %+v", v)
	}
}
