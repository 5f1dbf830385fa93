// internal/app/features/health/health.go
package health

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/storepulse/internal/app/store/dataset"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler provides health check endpoints.
type Handler struct {
	data   *dataset.Store
	logger *zap.Logger
}

// NewHandler creates a new health check Handler.
func NewHandler(data *dataset.Store, logger *zap.Logger) *Handler {
	return &Handler{
		data:   data,
		logger: logger,
	}
}

// Response represents the health check response.
type Response struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}

// Routes returns a chi.Router with health check routes mounted.
// Provides /health (full check), /health/ready, and /health/live.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	r.Get("/ready", h.Ready)
	r.Get("/live", h.Live)
	return r
}

// MountRootEndpoints adds /ready and /livez endpoints directly on the root router.
// This is the standard convention for Kubernetes probes:
//   - /ready (or /readyz) - readiness probe
//   - /livez - liveness probe
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/ready", h.Ready)
	r.Get("/readyz", h.Ready)
	r.Get("/livez", h.Live)
}

// Check performs a full health check including dataset availability.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	resp := Response{
		Status:   "ok",
		Services: make(map[string]string),
	}

	if !h.data.Ready() {
		resp.Status = "degraded"
		resp.Services["dataset"] = "not loaded"
		h.logger.Warn("health check: dataset not loaded yet")
	} else {
		resp.Services["dataset"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if resp.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(resp)
}

// Ready checks if the service is ready to accept requests: readiness means
// an initial dataset load has completed.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.data.Ready() {
		h.logger.Warn("readiness check failed: dataset not loaded")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"not ready"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ready"}`))
}

// Live checks if the service is alive.
// Used by Kubernetes liveness probes.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"alive"}`))
}
