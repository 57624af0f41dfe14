// Package rest serves the data engine over HTTP under /api.
package rest

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
	"github.com/heartmarshall/covenantops-backend/internal/engine"
)

// backend is the engine surface the handlers call.
type backend interface {
	ListLoans(ctx context.Context) ([]domain.Loan, error)
	CreateLoan(ctx context.Context, title string) (*domain.Loan, error)
	GetLoan(ctx context.Context, id int64) (*domain.LoanDetail, error)
	ImportText(ctx context.Context, loanID int64, text string) (*domain.LoanDetail, error)
	Extract(ctx context.Context, loanID int64, text *string) (engine.ExtractResult, error)

	ListObligations(ctx context.Context, loanID int64) ([]domain.Obligation, error)
	CreateObligation(ctx context.Context, loanID int64, fields domain.ObligationPatch) (*domain.Obligation, error)
	UpdateObligation(ctx context.Context, id int64, patch domain.ObligationPatch) (*domain.Obligation, error)
	CompleteObligation(ctx context.Context, id int64) (*domain.Obligation, error)
	ReopenObligation(ctx context.Context, id int64) (*domain.Obligation, error)
	DeleteObligation(ctx context.Context, id int64) (engine.DeleteResult, error)

	ListEvidence(ctx context.Context, obligationID int64) ([]domain.Evidence, error)
	UploadEvidence(ctx context.Context, obligationID int64, upload engine.Upload) (*domain.Evidence, error)

	ListAudit(ctx context.Context, loanID, obligationID *int64) ([]domain.AuditEvent, error)

	ExportCalendar(ctx context.Context, loanID int64) ([]byte, error)
	ExportCompliancePacket(ctx context.Context, loanID int64, apiBase string) ([]byte, error)

	DemoMode(ctx context.Context) (bool, error)
	SetDemoMode(ctx context.Context, on bool) error
	ResetDemoData(ctx context.Context) (engine.SeedResult, error)
}

// Handler holds the API endpoints.
type Handler struct {
	engine         backend
	log            *slog.Logger
	maxUploadBytes int64
}

// NewHandler creates a Handler. maxUploadBytes bounds evidence uploads.
func NewHandler(log *slog.Logger, e backend, maxUploadBytes int64) *Handler {
	return &Handler{
		engine:         e,
		log:            log.With("component", "rest"),
		maxUploadBytes: maxUploadBytes,
	}
}
