// Package obligation implements the Obligation repository over the dataset document.
package obligation

import (
	"context"
	"time"

	"github.com/heartmarshall/covenantops-backend/internal/adapter/document"
	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// Repo provides obligation persistence.
type Repo struct {
	tx *document.TxManager
}

// New creates a new obligation repository.
func New(tx *document.TxManager) *Repo {
	return &Repo{tx: tx}
}

// ListByLoan returns the obligations of loanID in insertion order.
func (r *Repo) ListByLoan(ctx context.Context, loanID int64) ([]domain.Obligation, error) {
	doc, err := r.tx.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Obligation{}
	for _, o := range doc.Obligations {
		if o.LoanID == loanID {
			out = append(out, o)
		}
	}
	return out, nil
}

// GetByID returns obligation id or a not-found error naming it.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Obligation, error) {
	doc, err := r.tx.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := doc.FindObligation(id)
	if i < 0 {
		return nil, domain.NotFoundError(domain.EntityTypeObligation, id)
	}
	o := doc.Obligations[i]
	return &o, nil
}

// Create stamps o with the next obligation id and appends it. The owning loan is
// checked first so a failed create allocates nothing.
func (r *Repo) Create(ctx context.Context, o *domain.Obligation) (*domain.Obligation, error) {
	var created domain.Obligation
	err := r.tx.Mutate(ctx, func(doc *document.Document) error {
		if doc.FindLoan(o.LoanID) < 0 {
			return domain.NotFoundError(domain.EntityTypeLoan, o.LoanID)
		}
		created = *o
		created.ID = doc.NextID(document.CounterObligation)
		doc.Obligations = append(doc.Obligations, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update merges patch over obligation id and sets updated_at to now.
func (r *Repo) Update(ctx context.Context, id int64, patch domain.ObligationPatch, now time.Time) (*domain.Obligation, error) {
	var updated domain.Obligation
	err := r.tx.Mutate(ctx, func(doc *document.Document) error {
		i := doc.FindObligation(id)
		if i < 0 {
			return domain.NotFoundError(domain.EntityTypeObligation, id)
		}
		patch.ApplyTo(&doc.Obligations[i])
		doc.Obligations[i].UpdatedAt = now
		updated = doc.Obligations[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes obligation id together with every evidence row attached to it.
// It returns the number of evidence rows removed.
func (r *Repo) Delete(ctx context.Context, id int64) (int, error) {
	var removed int
	err := r.tx.Mutate(ctx, func(doc *document.Document) error {
		i := doc.FindObligation(id)
		if i < 0 {
			return domain.NotFoundError(domain.EntityTypeObligation, id)
		}
		doc.Obligations = append(doc.Obligations[:i], doc.Obligations[i+1:]...)

		kept := doc.Evidence[:0]
		for _, e := range doc.Evidence {
			if e.ObligationID == id {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		doc.Evidence = kept
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
