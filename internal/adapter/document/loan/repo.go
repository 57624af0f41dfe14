// Package loan implements the Loan repository over the dataset document.
package loan

import (
	"context"
	"slices"

	"github.com/heartmarshall/covenantops-backend/internal/adapter/document"
	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// Repo provides loan persistence.
type Repo struct {
	tx *document.TxManager
}

// New creates a new loan repository.
func New(tx *document.TxManager) *Repo {
	return &Repo{tx: tx}
}

// List returns all loans in insertion order.
func (r *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	doc, err := r.tx.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Loans), nil
}

// GetByID returns loan id or a not-found error naming it.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	doc, err := r.tx.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := doc.FindLoan(id)
	if i < 0 {
		return nil, domain.NotFoundError(domain.EntityTypeLoan, id)
	}
	l := doc.Loans[i]
	return &l, nil
}

// Create stamps loan with the next loan id and appends it.
func (r *Repo) Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	var created domain.Loan
	err := r.tx.Mutate(ctx, func(doc *document.Document) error {
		created = *loan
		created.ID = doc.NextID(document.CounterLoan)
		doc.Loans = append(doc.Loans, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
