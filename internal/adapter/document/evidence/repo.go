// Package evidence implements the Evidence repository over the dataset document.
package evidence

import (
	"context"

	"github.com/heartmarshall/covenantops-backend/internal/adapter/document"
	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// Repo provides evidence persistence.
type Repo struct {
	tx *document.TxManager
}

// New creates a new evidence repository.
func New(tx *document.TxManager) *Repo {
	return &Repo{tx: tx}
}

// ListByObligation returns the evidence attached to obligationID in insertion order.
func (r *Repo) ListByObligation(ctx context.Context, obligationID int64) ([]domain.Evidence, error) {
	doc, err := r.tx.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Evidence{}
	for _, e := range doc.Evidence {
		if e.ObligationID == obligationID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Create stamps e with the next evidence id and appends it. The obligation
// reference is stored as given.
func (r *Repo) Create(ctx context.Context, e *domain.Evidence) (*domain.Evidence, error) {
	var created domain.Evidence
	err := r.tx.Mutate(ctx, func(doc *document.Document) error {
		created = *e
		created.ID = doc.NextID(document.CounterEvidence)
		doc.Evidence = append(doc.Evidence, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
