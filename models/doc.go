// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - IncrementRequest: quantity
  - SetFieldRequest: field, newValue

Numeric values are decoded as `any` (with json.Number enabled in
middleware.ParseJSONBody) and converted with raffle.ParseCount, so
"5", true, null and 2.5 are all rejected with 400.

# Response Types

Types for JSON responses:

  - MutationResponse: message, manager (the stored record)
  - MessageResponse: message
  - ImportResponse: applied, skipped
  - FieldViewResponse: max_yards, increment, markers, managers
  - ErrorResponse: error, message

The manager list itself is served as []raffle.RecordView.
*/
package models
