package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const checkTimeout = 3 * time.Second

// Check probes one dependency of the service.
type Check func(ctx context.Context) error

// HealthHandler serves the probe endpoints. Checks run concurrently on every
// /ready and /health request.
type HealthHandler struct {
	version string
	started time.Time
	checks  map[string]Check
}

// NewHealthHandler creates a HealthHandler reporting the named checks.
func NewHealthHandler(version string, checks map[string]Check) *HealthHandler {
	return &HealthHandler{version: version, started: time.Now(), checks: checks}
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Uptime     string                     `json:"uptime,omitempty"`
	Components map[string]componentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

type componentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 when any check fails.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, healthy := h.run(r.Context())
	writeJSON(w, statusCode(healthy), healthResponse{Status: statusText(healthy), Timestamp: time.Now()})
}

// Health reports every component with its latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, healthy := h.run(r.Context())
	writeJSON(w, statusCode(healthy), healthResponse{
		Status:     statusText(healthy),
		Version:    h.version,
		Uptime:     time.Since(h.started).Truncate(time.Second).String(),
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) run(ctx context.Context) (map[string]componentStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		healthy    = true
		components = make(map[string]componentStatus, len(h.checks))
		g          errgroup.Group
	)
	for name, check := range h.checks {
		g.Go(func() error {
			start := time.Now()
			err := check(ctx)
			cs := componentStatus{Status: "ok", Latency: time.Since(start).String()}
			if err != nil {
				cs = componentStatus{Status: "down"}
			}

			mu.Lock()
			defer mu.Unlock()
			components[name] = cs
			healthy = healthy && err == nil
			return nil
		})
	}
	_ = g.Wait()

	return components, healthy
}

func statusCode(healthy bool) int {
	if healthy {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

func statusText(healthy bool) string {
	if healthy {
		return "ok"
	}
	return "down"
}
