// Package seed generates demo data: a whole fresh dataset, or a batch of
// obligations for a loan in place of real text extraction.
package seed

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
	Create(ctx context.Context, o *domain.Obligation) (*domain.Obligation, error)
}

type datasetStore interface {
	ReplaceDataset(ctx context.Context, ds domain.Dataset) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides seeding and demo extraction.
type Service struct {
	gen         *Generator
	loans       loanRepo
	obligations obligationRepo
	store       datasetStore
	tx          txManager
	clock       func() time.Time
	log         *slog.Logger
}

// NewService creates a new seed service.
func NewService(
	log *slog.Logger,
	gen *Generator,
	loans loanRepo,
	obligations obligationRepo,
	store datasetStore,
	tx txManager,
	clock func() time.Time,
) *Service {
	return &Service{
		gen:         gen,
		loans:       loans,
		obligations: obligations,
		store:       store,
		tx:          tx,
		clock:       clock,
		log:         log.With("service", "seed"),
	}
}

func (s *Service) now() time.Time {
	return s.clock().UTC()
}
