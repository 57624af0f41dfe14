// Package export renders a loan's obligations for use outside the app: an
// iCalendar feed of due dates and a printable compliance packet.
package export

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

type loanRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Loan, error)
}

type obligationRepo interface {
	ListByLoan(ctx context.Context, loanID int64) ([]domain.Obligation, error)
}

type evidenceRepo interface {
	ListByObligation(ctx context.Context, obligationID int64) ([]domain.Evidence, error)
}

// Service provides loan exports.
type Service struct {
	loans       loanRepo
	obligations obligationRepo
	evidence    evidenceRepo
	clock       func() time.Time
	log         *slog.Logger
}

// NewService creates a new export service. clock stamps generated documents.
func NewService(
	log *slog.Logger,
	loans loanRepo,
	obligations obligationRepo,
	evidence evidenceRepo,
	clock func() time.Time,
) *Service {
	return &Service{
		loans:       loans,
		obligations: obligations,
		evidence:    evidence,
		clock:       clock,
		log:         log.With("service", "export"),
	}
}

func (s *Service) now() time.Time {
	return s.clock().UTC()
}

// loanWithObligations fetches a loan and its obligations, failing NotFound for
// an unknown loan.
func (s *Service) loanWithObligations(ctx context.Context, loanID int64) (*domain.Loan, []domain.Obligation, error) {
	loan, err := s.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, nil, err
	}
	obligations, err := s.obligations.ListByLoan(ctx, loanID)
	if err != nil {
		return nil, nil, err
	}
	return loan, obligations, nil
}
