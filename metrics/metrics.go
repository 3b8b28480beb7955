// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

// Outcome labels
const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
	OutcomeNotFound     = "not_found"
	OutcomePersistence  = "persistence_failure"
	OutcomeError        = "error"
)

var (
	// mutations counts mutation attempts.
	// Labels: operation (increment, set, reset, import), field, outcome
	mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "raffle",
		Name:      "mutations_total",
		Help:      "Total manager mutations by operation, field and outcome",
	}, []string{"operation", "field", "outcome"})

	// persistDuration measures load and save calls against the store.
	// Labels: backend, operation (load, save), outcome
	persistDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "raffle",
		Subsystem: "persist",
		Name:      "duration_seconds",
		Help:      "Time spent loading or saving the manager set",
		Buckets:   []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"backend", "operation", "outcome"})

	// requestDuration measures HTTP handling time.
	// Labels: method, route (mux pattern), status
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "raffle",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request handling time",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Outcome maps an error from the raffle service to a label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, raffle.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, raffle.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, raffle.ErrPersistence):
		return OutcomePersistence
	}
	return OutcomeError
}

// Field labels outside the raffle fields
const (
	FieldAll     = "all"
	FieldInvalid = "invalid"
)

// RecordMutation counts one mutation attempt. Unknown field values are
// recorded as FieldInvalid so callers cannot grow the label set.
func RecordMutation(operation, field string, err error) {
	mutations.WithLabelValues(operation, fieldLabel(field), Outcome(err)).Inc()
}

func fieldLabel(field string) string {
	switch field {
	case string(raffle.FieldGraduations), string(raffle.FieldIntegrations), string(raffle.FieldEntries), FieldAll:
		return field
	}
	return FieldInvalid
}

// ObservePersist records a store call that started at start.
func ObservePersist(backend, operation string, start time.Time, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	persistDuration.WithLabelValues(backend, operation, outcome).Observe(time.Since(start).Seconds())
}

// ObserveRequest records one handled HTTP request.
func ObserveRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
