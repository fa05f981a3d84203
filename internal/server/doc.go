// Package server implements the HTTP layer: the classify API, health and
// readiness probes, Prometheus metrics, and the version endpoint.
package server
