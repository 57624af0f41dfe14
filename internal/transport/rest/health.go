package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/covenantops-backend/internal/engine"
)

// healthChecker is the slice of the engine the health endpoints need.
type healthChecker interface {
	Health(ctx context.Context) (engine.HealthStatus, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checker healthChecker
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(checker healthChecker, version string) *HealthHandler {
	return &HealthHandler{checker: checker, version: version}
}

// HealthResponse is the JSON body of the health endpoints.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health checks the store: 200 with its latency when it answers, 503 otherwise.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	start := time.Now()
	res, err := h.checker.Health(ctx)
	latency := time.Since(start)

	status := http.StatusOK
	store := CompStatus{Status: "ok", Latency: latency.String()}
	if err != nil {
		status = http.StatusServiceUnavailable
		store = CompStatus{Status: "down"}
	}

	writeJSON(w, status, HealthResponse{
		Status:     res.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"store": store},
		Timestamp:  time.Now(),
	})
}
