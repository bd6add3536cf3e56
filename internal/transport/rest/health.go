package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

type pinger interface {
	Ping(ctx context.Context) error
}

const healthCheckTimeout = 3 * time.Second

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	checks  map[string]pinger
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler with the database as its first
// dependency.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		checks:  map[string]pinger{"database": db},
		version: version,
		now:     time.Now,
	}
}

// WithCheck adds a dependency reported under name.
func (h *HealthHandler) WithCheck(name string, p pinger) *HealthHandler {
	h.checks[name] = p
	return h
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is one dependency's result.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live answers 200 as long as the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 503 while any dependency is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.probe(r.Context())
	writeJSON(w, statusCode(ok), HealthResponse{Status: statusText(ok), Timestamp: h.now()})
}

// Health is Ready with per-dependency detail and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.probe(r.Context())
	writeJSON(w, statusCode(ok), HealthResponse{
		Status:     statusText(ok),
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

// probe pings every dependency concurrently under a shared deadline.
func (h *HealthHandler) probe(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, len(h.checks))
		healthy    = true
		g          errgroup.Group
	)
	for name, p := range h.checks {
		g.Go(func() error {
			start := time.Now()
			err := p.Ping(ctx)
			st := CompStatus{Status: "ok", Latency: time.Since(start).String()}
			if err != nil {
				st = CompStatus{Status: "down"}
			}

			mu.Lock()
			components[name] = st
			healthy = healthy && err == nil
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return components, healthy
}

func statusText(ok bool) string {
	if ok {
		return "ok"
	}
	return "down"
}

func statusCode(ok bool) int {
	if ok {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
