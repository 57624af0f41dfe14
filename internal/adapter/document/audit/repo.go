// Package audit implements the append-only audit log over the dataset document.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/heartmarshall/covenantops-backend/internal/adapter/document"
	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// Repo provides audit log persistence.
type Repo struct {
	tx *document.TxManager
}

// New creates a new audit repository.
func New(tx *document.TxManager) *Repo {
	return &Repo{tx: tx}
}

// Log appends record with the next audit id. The entity id is not checked so
// history outlives the entity it describes.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	details := record.Details
	if details == nil {
		details = map[string]any{}
	}
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("audit marshal details: %w", err)
	}

	return r.tx.Mutate(ctx, func(doc *document.Document) error {
		doc.AuditEvents = append(doc.AuditEvents, domain.AuditEvent{
			ID:          doc.NextID(document.CounterAudit),
			EntityType:  record.EntityType,
			EntityID:    record.EntityID,
			Action:      record.Action,
			DetailsJSON: string(payload),
			At:          record.At,
		})
		return nil
	})
}

// Query returns events newest first. A loan filter keeps the loan's own events and
// those of obligations currently owned by it; an obligation filter keeps the
// obligation's events and those of evidence currently attached to it. When both
// are given an event passing either is kept.
func (r *Repo) Query(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEvent, error) {
	doc, err := r.tx.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AuditEvent, 0, len(doc.AuditEvents))
	for _, e := range doc.AuditEvents {
		if filter.IsEmpty() || matchesLoan(doc, e, filter.LoanID) || matchesObligation(doc, e, filter.ObligationID) {
			out = append(out, e)
		}
	}

	slices.SortStableFunc(out, func(a, b domain.AuditEvent) int {
		if c := b.At.Compare(a.At); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	return out, nil
}

func matchesLoan(doc *document.Document, e domain.AuditEvent, loanID *int64) bool {
	if loanID == nil {
		return false
	}
	switch e.EntityType {
	case domain.EntityTypeLoan:
		return e.EntityID == *loanID
	case domain.EntityTypeObligation:
		i := doc.FindObligation(e.EntityID)
		return i >= 0 && doc.Obligations[i].LoanID == *loanID
	}
	return false
}

func matchesObligation(doc *document.Document, e domain.AuditEvent, obligationID *int64) bool {
	if obligationID == nil {
		return false
	}
	switch e.EntityType {
	case domain.EntityTypeObligation:
		return e.EntityID == *obligationID
	case domain.EntityTypeEvidence:
		i := doc.FindEvidence(e.EntityID)
		return i >= 0 && doc.Evidence[i].ObligationID == *obligationID
	}
	return false
}
