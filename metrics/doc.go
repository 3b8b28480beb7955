// Package metrics exposes Prometheus counters and histograms for mutations,
// store calls and HTTP requests, registered on the default registry.
package metrics
