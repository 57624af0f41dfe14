package engine

import (
	"context"
	"fmt"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
	evidencesvc "github.com/heartmarshall/covenantops-backend/internal/service/evidence"
	loansvc "github.com/heartmarshall/covenantops-backend/internal/service/loan"
	obligationsvc "github.com/heartmarshall/covenantops-backend/internal/service/obligation"
	seedsvc "github.com/heartmarshall/covenantops-backend/internal/service/seed"
)

// HealthStatus is the result of Health.
type HealthStatus struct {
	Status string `json:"status"`
}

// ExtractResult wraps the obligations returned by Extract.
type ExtractResult struct {
	Obligations []domain.Obligation `json:"obligations"`
}

// DeleteResult reports whether DeleteObligation removed anything.
type DeleteResult = obligationsvc.DeleteResult

// Upload is the metadata of an evidence file. Bytes never reach the engine.
type Upload struct {
	Filename  string
	SizeBytes int64
	Note      *string
}

// Health reports "ok" when the store answers.
func (e *Engine) Health(ctx context.Context) (HealthStatus, error) {
	return observe(e, "health", func() (HealthStatus, error) {
		if err := e.docs.Ping(ctx); err != nil {
			return HealthStatus{Status: "down"}, fmt.Errorf("store ping: %w", err)
		}
		return HealthStatus{Status: "ok"}, nil
	})
}

// ListLoans returns every loan in creation order.
func (e *Engine) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	return observe(e, "listLoans", func() ([]domain.Loan, error) {
		return e.loans.ListLoans(ctx)
	})
}

// CreateLoan adds a loan with the given title.
func (e *Engine) CreateLoan(ctx context.Context, title string) (*domain.Loan, error) {
	return observe(e, "createLoan", func() (*domain.Loan, error) {
		return e.loans.CreateLoan(ctx, loansvc.CreateLoanInput{Title: title})
	})
}

// GetLoan returns the loan with its per-status obligation summary.
func (e *Engine) GetLoan(ctx context.Context, id int64) (*domain.LoanDetail, error) {
	return observe(e, "getLoan", func() (*domain.LoanDetail, error) {
		return e.loans.GetLoan(ctx, id)
	})
}

// ImportText records that agreement text was supplied for a loan.
func (e *Engine) ImportText(ctx context.Context, loanID int64, text string) (*domain.LoanDetail, error) {
	return observe(e, "importText", func() (*domain.LoanDetail, error) {
		return e.loans.ImportText(ctx, loansvc.ImportTextInput{LoanID: loanID, Text: text})
	})
}

// Extract returns demo obligations for a loan; see seed.Service.Extract.
func (e *Engine) Extract(ctx context.Context, loanID int64, text *string) (ExtractResult, error) {
	return observe(e, "extract", func() (ExtractResult, error) {
		obligations, err := e.seed.Extract(ctx, seedsvc.ExtractInput{LoanID: loanID, Text: text})
		if err != nil {
			return ExtractResult{}, err
		}
		return ExtractResult{Obligations: obligations}, nil
	})
}

// ListObligations returns the obligations of a loan.
func (e *Engine) ListObligations(ctx context.Context, loanID int64) ([]domain.Obligation, error) {
	return observe(e, "listObligations", func() ([]domain.Obligation, error) {
		return e.obligations.ListObligations(ctx, loanID)
	})
}

// CreateObligation adds an obligation to a loan from the present fields.
func (e *Engine) CreateObligation(ctx context.Context, loanID int64, fields domain.ObligationPatch) (*domain.Obligation, error) {
	return observe(e, "createObligation", func() (*domain.Obligation, error) {
		return e.obligations.CreateObligation(ctx, obligationsvc.CreateObligationInput{LoanID: loanID, Fields: fields})
	})
}

// UpdateObligation merges the present fields of patch over obligation id.
func (e *Engine) UpdateObligation(ctx context.Context, id int64, patch domain.ObligationPatch) (*domain.Obligation, error) {
	return observe(e, "updateObligation", func() (*domain.Obligation, error) {
		return e.obligations.UpdateObligation(ctx, obligationsvc.UpdateObligationInput{ObligationID: id, Fields: patch})
	})
}

// CompleteObligation sets an obligation to COMPLETED.
func (e *Engine) CompleteObligation(ctx context.Context, id int64) (*domain.Obligation, error) {
	return observe(e, "completeObligation", func() (*domain.Obligation, error) {
		return e.obligations.CompleteObligation(ctx, id)
	})
}

// ReopenObligation sets an obligation back to ON_TRACK.
func (e *Engine) ReopenObligation(ctx context.Context, id int64) (*domain.Obligation, error) {
	return observe(e, "reopenObligation", func() (*domain.Obligation, error) {
		return e.obligations.ReopenObligation(ctx, id)
	})
}

// DeleteObligation removes an obligation and its evidence.
func (e *Engine) DeleteObligation(ctx context.Context, id int64) (DeleteResult, error) {
	return observe(e, "deleteObligation", func() (DeleteResult, error) {
		return e.obligations.DeleteObligation(ctx, id)
	})
}

// ListEvidence returns the evidence recorded for an obligation.
func (e *Engine) ListEvidence(ctx context.Context, obligationID int64) ([]domain.Evidence, error) {
	return observe(e, "listEvidence", func() ([]domain.Evidence, error) {
		return e.evidence.ListEvidence(ctx, obligationID)
	})
}

// UploadEvidence records evidence metadata against an obligation.
func (e *Engine) UploadEvidence(ctx context.Context, obligationID int64, upload Upload) (*domain.Evidence, error) {
	return observe(e, "uploadEvidence", func() (*domain.Evidence, error) {
		return e.evidence.UploadEvidence(ctx, evidencesvc.UploadEvidenceInput{
			ObligationID: obligationID,
			Filename:     upload.Filename,
			SizeBytes:    upload.SizeBytes,
			Note:         upload.Note,
		})
	})
}

// ListAudit returns audit events newest first. Either filter may be nil.
func (e *Engine) ListAudit(ctx context.Context, loanID, obligationID *int64) ([]domain.AuditEvent, error) {
	return observe(e, "listAudit", func() ([]domain.AuditEvent, error) {
		return e.audit.ListAudit(ctx, domain.AuditFilter{LoanID: loanID, ObligationID: obligationID})
	})
}

// ExportCalendar renders the loan's due dates as iCalendar text.
func (e *Engine) ExportCalendar(ctx context.Context, loanID int64) ([]byte, error) {
	return observe(e, "exportCalendar", func() ([]byte, error) {
		return e.export.Calendar(ctx, loanID)
	})
}

// ExportCompliancePacket renders a printable HTML packet. Evidence links are
// built under apiBase.
func (e *Engine) ExportCompliancePacket(ctx context.Context, loanID int64, apiBase string) ([]byte, error) {
	return observe(e, "exportCompliancePacket", func() ([]byte, error) {
		return e.export.CompliancePacket(ctx, loanID, apiBase)
	})
}
