package obligation

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

type obligationRepo interface {
	ListByLoan(ctx context.Context, loanID int64) ([]domain.Obligation, error)
	GetByID(ctx context.Context, id int64) (*domain.Obligation, error)
	Create(ctx context.Context, o *domain.Obligation) (*domain.Obligation, error)
	Update(ctx context.Context, id int64, patch domain.ObligationPatch, now time.Time) (*domain.Obligation, error)
	Delete(ctx context.Context, id int64) (int, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Policy tunes how strictly direct updates are checked.
type Policy struct {
	// StrictStatusTransitions rejects status in UpdateObligation; status then
	// changes only through CompleteObligation and ReopenObligation.
	StrictStatusTransitions bool
}

// Service provides obligation operations.
type Service struct {
	obligations obligationRepo
	audit       auditLogger
	tx          txManager
	policy      Policy
	clock       func() time.Time
	log         *slog.Logger
}

// NewService creates a new Obligation service.
func NewService(
	log *slog.Logger,
	obligations obligationRepo,
	audit auditLogger,
	tx txManager,
	clock func() time.Time,
	policy Policy,
) *Service {
	return &Service{
		obligations: obligations,
		audit:       audit,
		tx:          tx,
		policy:      policy,
		clock:       clock,
		log:         log.With("service", "obligation"),
	}
}

func (s *Service) now() time.Time {
	return s.clock().UTC()
}

// DeleteResult reports the outcome of DeleteObligation.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}
