package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// pinger defines the minimal interface for dependency health checks.
type pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to a health check.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Check is one named dependency of the health endpoints.
type Check struct {
	Name   string
	Pinger pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []Check
	version string
}

// NewHealthHandler creates a HealthHandler. With no checks the service is
// always ready.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

const probeTimeout = 3 * time.Second

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when every dependency answers, 503
// listing the ones that do not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	down := make(map[string]CompStatus)
	for _, res := range h.probe(r.Context()) {
		if res.err != nil {
			down[res.name] = CompStatus{Status: "down"}
		}
	}

	if len(down) > 0 {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:     "down",
			Components: down,
			Timestamp:  time.Now(),
		})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports every dependency with its latency plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus, len(h.checks))
	overall, status := "ok", http.StatusOK

	for _, res := range h.probe(r.Context()) {
		if res.err != nil {
			components[res.name] = CompStatus{Status: "down"}
			overall, status = "down", http.StatusServiceUnavailable
			continue
		}
		components[res.name] = CompStatus{Status: "ok", Latency: res.latency.String()}
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

type probeResult struct {
	name    string
	latency time.Duration
	err     error
}

// probe pings all dependencies concurrently under one deadline.
func (h *HealthHandler) probe(ctx context.Context) []probeResult {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	results := make([]probeResult, len(h.checks))
	var g errgroup.Group
	for i, c := range h.checks {
		g.Go(func() error {
			start := time.Now()
			err := c.Pinger.Ping(ctx)
			results[i] = probeResult{name: c.Name, latency: time.Since(start), err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
