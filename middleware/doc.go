// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/managers", middleware.WithLogging(handler))

Each request gets an X-Request-ID (reused when the client sends one). The
completion line carries status and duration_ms, and the latency is
recorded in raffle_http_request_duration_seconds under the matched route
pattern.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET, POST, OPTIONS with headers Content-Type, X-Override-PIN and
X-Request-ID.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid quantity")

ParseJSONBody enables json.Number so numeric fields decoded into `any`
keep their exact text until raffle.ParseCount checks them.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Honours X-Forwarded-For and X-Real-IP; used in request logs.
*/
package middleware
