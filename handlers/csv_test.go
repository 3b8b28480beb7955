// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CBlanco0220/Raffle-tracker/models"
	"github.com/CBlanco0220/Raffle-tracker/testutil"
)

func TestExport(t *testing.T) {
	svc, _ := testutil.NewTestService(t, testutil.SeedRecords())
	h := NewCSVHandler(svc)

	w := httptest.NewRecorder()
	h.Export(w, testutil.MakeRequest("GET", "/api/export.csv", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Expected text/csv, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "managers_export.csv") {
		t.Errorf("Unexpected Content-Disposition %q", cd)
	}

	expected := "Name,Graduations,Integrations,Entries\n" +
		"Alice,10,5,0\n" +
		"Bob,30,20,99\n" +
		"Carol,25,16,2\n"
	if w.Body.String() != expected {
		t.Errorf("Unexpected export:\n%s", w.Body.String())
	}
}

func TestTemplate(t *testing.T) {
	svc, _ := testutil.NewTestService(t, testutil.SeedRecords())
	h := NewCSVHandler(svc)

	w := httptest.NewRecorder()
	h.Template(w, testutil.MakeRequest("GET", "/api/template.csv", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	expected := "Name,Graduations,Integrations\nAlice,0,0\nBob,0,0\nCarol,0,0\n"
	if w.Body.String() != expected {
		t.Errorf("Unexpected template:\n%s", w.Body.String())
	}
}

func TestImport(t *testing.T) {
	testCases := []struct {
		name            string
		body            string
		expectedStatus  int
		expectedApplied int
		expectedSkipped []models.SkippedRow
	}{
		{
			name:            "applies valid rows",
			body:            "Name,Graduations,Integrations\n\"Alice\",25,16\nbob,1,2\n",
			expectedStatus:  http.StatusOK,
			expectedApplied: 2,
			expectedSkipped: []models.SkippedRow{},
		},
		{
			name:            "reports bad and unknown rows in line order",
			body:            "Name,Graduations,Integrations\nGhost,1,1\nAlice,x,1\nCarol,3,3\n",
			expectedStatus:  http.StatusOK,
			expectedApplied: 1,
			expectedSkipped: []models.SkippedRow{
				{Line: 2, Name: "Ghost", Reason: "manager not found"},
				{Line: 3, Name: "Alice", Reason: "counts must be non-negative integers"},
			},
		},
		{
			name:           "missing columns",
			body:           "Name,Entries\nAlice,3\n",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no data rows",
			body:           "Name,Graduations,Integrations\n",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := testutil.NewTestService(t, testutil.SeedRecords())
			h := NewCSVHandler(svc)

			w := httptest.NewRecorder()
			h.Import(w, testutil.MakeRawRequest("POST", "/api/import", "text/csv", tc.body))

			testutil.AssertStatus(t, w, tc.expectedStatus)
			if tc.expectedStatus != http.StatusOK {
				return
			}

			var resp models.ImportResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Applied != tc.expectedApplied {
				t.Errorf("Expected %d applied, got %d", tc.expectedApplied, resp.Applied)
			}
			if len(resp.Skipped) != len(tc.expectedSkipped) {
				t.Fatalf("Expected skipped %+v, got %+v", tc.expectedSkipped, resp.Skipped)
			}
			for i := range tc.expectedSkipped {
				if resp.Skipped[i] != tc.expectedSkipped[i] {
					t.Errorf("Skipped[%d]: expected %+v, got %+v", i, tc.expectedSkipped[i], resp.Skipped[i])
				}
			}
		})
	}
}

func TestImport_ClearsOverride(t *testing.T) {
	svc, _ := testutil.NewTestService(t, testutil.SeedRecords())
	h := NewCSVHandler(svc)

	w := httptest.NewRecorder()
	h.Import(w, testutil.MakeRawRequest("POST", "/api/import", "text/csv", "Name,Graduations,Integrations\nBob,26,17\n"))
	testutil.AssertStatus(t, w, http.StatusOK)

	bob, err := svc.Get("Bob")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if bob.HasOverride() {
		t.Error("Expected import to clear Bob's override")
	}
}

func TestImport_PersistenceFailure(t *testing.T) {
	svc, mem := testutil.NewTestService(t, testutil.SeedRecords())
	mem.FailWith(errors.New("disk full"))
	h := NewCSVHandler(svc)

	w := httptest.NewRecorder()
	h.Import(w, testutil.MakeRawRequest("POST", "/api/import", "text/csv", "Name,Graduations,Integrations\nAlice,1,1\n"))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func TestImport_TooLarge(t *testing.T) {
	svc, _ := testutil.NewTestService(t, testutil.SeedRecords())
	h := NewCSVHandler(svc)

	body := "Name,Graduations,Integrations\n" + strings.Repeat("Alice,1,1\n", MaxImportBytes/10+1)

	w := httptest.NewRecorder()
	h.Import(w, testutil.MakeRawRequest("POST", "/api/import", "text/csv", body))

	testutil.AssertStatus(t, w, http.StatusRequestEntityTooLarge)
}
