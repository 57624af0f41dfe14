package loan

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

type loanRepo interface {
	List(ctx context.Context) ([]domain.Loan, error)
	GetByID(ctx context.Context, id int64) (*domain.Loan, error)
	Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error)
}

type obligationRepo interface {
	ListByLoan(ctx context.Context, loanID int64) ([]domain.Obligation, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides loan operations.
type Service struct {
	loans       loanRepo
	obligations obligationRepo
	audit       auditLogger
	tx          txManager
	clock       func() time.Time
	log         *slog.Logger
}

// NewService creates a new Loan service. clock supplies "now" for timestamps.
func NewService(
	log *slog.Logger,
	loans loanRepo,
	obligations obligationRepo,
	audit auditLogger,
	tx txManager,
	clock func() time.Time,
) *Service {
	return &Service{
		loans:       loans,
		obligations: obligations,
		audit:       audit,
		tx:          tx,
		clock:       clock,
		log:         log.With("service", "loan"),
	}
}

func (s *Service) now() time.Time {
	return s.clock().UTC()
}
