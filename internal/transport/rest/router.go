package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/covenantops-backend/internal/config"
	"github.com/heartmarshall/covenantops-backend/internal/metrics"
	"github.com/heartmarshall/covenantops-backend/internal/transport/middleware"
)

// Engine is everything the router serves.
type Engine interface {
	backend
	healthChecker
}

// NewRouter mounts the API, health and metrics endpoints behind the middleware chain.
func NewRouter(log *slog.Logger, e Engine, m *metrics.Metrics, cfg config.Config, version string) http.Handler {
	h := NewHandler(log, e, cfg.Server.MaxUploadBytes)
	health := NewHealthHandler(e, version)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /api/health", health.Health)
	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	mux.HandleFunc("GET /api/loans", h.listLoans)
	mux.HandleFunc("POST /api/loans", h.createLoan)
	mux.HandleFunc("GET /api/loans/{id}", h.getLoan)
	mux.HandleFunc("POST /api/loans/{id}/import-text", h.importText)
	mux.HandleFunc("POST /api/loans/{id}/extract", h.extract)
	mux.HandleFunc("GET /api/loans/{id}/obligations", h.listObligations)
	mux.HandleFunc("POST /api/loans/{id}/obligations", h.createObligation)
	mux.HandleFunc("GET /api/loans/{id}/export.ics", h.exportCalendar)
	mux.HandleFunc("GET /api/loans/{id}/compliance-packet", h.exportPacket)

	mux.HandleFunc("PUT /api/obligations/{id}", h.updateObligation)
	mux.HandleFunc("DELETE /api/obligations/{id}", h.deleteObligation)
	mux.HandleFunc("POST /api/obligations/{id}/complete", h.completeObligation)
	mux.HandleFunc("POST /api/obligations/{id}/reopen", h.reopenObligation)
	mux.HandleFunc("GET /api/obligations/{id}/evidence", h.listEvidence)
	mux.HandleFunc("POST /api/obligations/{id}/evidence", h.uploadEvidence)

	mux.HandleFunc("GET /api/audit", h.listAudit)

	mux.HandleFunc("GET /api/demo-mode", h.getDemoMode)
	mux.HandleFunc("PUT /api/demo-mode", h.setDemoMode)
	mux.HandleFunc("POST /api/demo/reset", h.resetDemoData)

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.Metrics(m),
		middleware.CORS(cfg.CORS),
	)
	return chain(mux)
}
