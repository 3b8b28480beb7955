// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CBlanco0220/Raffle-tracker/cliparse"
	"github.com/CBlanco0220/Raffle-tracker/raffle"
	"github.com/CBlanco0220/Raffle-tracker/storage"
)

// TestPIN is the override PIN used by GetTestConfig
const TestPIN = "0220"

// SeedRecords returns the standard fixture: one manager below every
// threshold, one above both with an override, one exactly at both.
func SeedRecords() []raffle.ManagerRecord {
	return []raffle.ManagerRecord{
		{Name: "Alice", Graduations: 10, Integrations: 5},
		{Name: "Bob", Graduations: 30, Integrations: 20, EntriesOverride: raffle.IntPtr(99)},
		{Name: "Carol", Graduations: 25, Integrations: 16},
	}
}

// NewTestService builds a service over an in-memory store seeded with
// records. The store is returned so tests can count saves or inject
// failures.
func NewTestService(t *testing.T, records []raffle.ManagerRecord) (*raffle.Service, *storage.MemoryStore) {
	t.Helper()

	mem := storage.NewMemoryStore(records)
	loaded, err := mem.Load(t.Context())
	if err != nil {
		t.Fatalf("Failed to load seed records: %v", err)
	}
	store, err := raffle.NewRecordStore(loaded)
	if err != nil {
		t.Fatalf("Failed to build record store: %v", err)
	}
	return raffle.NewService(store, mem), mem
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:        3318,
		StoreType:   cliparse.StoreMemory,
		OverridePIN: TestPIN,
		LogLevel:    "error",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeRawRequest creates a request with a verbatim body, for CSV uploads
// and malformed JSON.
func MakeRawRequest(method, path, contentType, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
