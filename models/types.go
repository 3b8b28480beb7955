// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/CBlanco0220/Raffle-tracker/raffle"

// Request types

// Quantity is left untyped so that strings, booleans and fractions can be
// rejected explicitly instead of failing JSON decoding.
type IncrementRequest struct {
	Quantity any `json:"quantity"`
}

type SetFieldRequest struct {
	Field    string `json:"field"`
	NewValue any    `json:"newValue"`
}

// Response types

type MutationResponse struct {
	Message string               `json:"message"`
	Manager raffle.ManagerRecord `json:"manager"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ImportResponse struct {
	Applied int          `json:"applied"`
	Skipped []SkippedRow `json:"skipped"`
}

// SkippedRow reports a CSV line that was not applied. Line is 1-based and
// counts the header.
type SkippedRow struct {
	Line   int    `json:"line"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

// Field view

type FieldPosition struct {
	Name    string `json:"name"`
	Entries int    `json:"entries"`
	Yards   int    `json:"yards"`
	Capped  bool   `json:"capped,omitempty"`
}

type FieldViewResponse struct {
	MaxYards  int             `json:"max_yards"`
	Increment int             `json:"increment"`
	Markers   []int           `json:"markers"`
	Managers  []FieldPosition `json:"managers"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
