// Package document persists the whole dataset as one JSON document under one key.
package document

import (
	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// Counter names one of the four id sequences.
type Counter string

const (
	CounterLoan       Counter = "loan"
	CounterObligation Counter = "obligation"
	CounterEvidence   Counter = "evidence"
	CounterAudit      Counter = "audit"
)

// NextIDs holds the next id to hand out per entity type.
type NextIDs struct {
	Loan       int64 `json:"loan"`
	Obligation int64 `json:"obligation"`
	Evidence   int64 `json:"evidence"`
	Audit      int64 `json:"audit"`
}

// Document is the unit of persistence.
type Document struct {
	Loans       []domain.Loan       `json:"loans"`
	Obligations []domain.Obligation `json:"obligations"`
	Evidence    []domain.Evidence   `json:"evidence"`
	AuditEvents []domain.AuditEvent `json:"auditEvents"`
	NextIDs     NextIDs             `json:"nextIds"`
}

// Empty returns a document with no records and every counter at 1.
func Empty() *Document {
	return &Document{
		Loans:       []domain.Loan{},
		Obligations: []domain.Obligation{},
		Evidence:    []domain.Evidence{},
		AuditEvents: []domain.AuditEvent{},
		NextIDs:     NextIDs{Loan: 1, Obligation: 1, Evidence: 1, Audit: 1},
	}
}

// FromDataset builds a document holding ds with counters placed just past the
// highest id of each collection. The audit log starts empty.
func FromDataset(ds domain.Dataset) *Document {
	d := Empty()
	d.Loans = append(d.Loans, ds.Loans...)
	d.Obligations = append(d.Obligations, ds.Obligations...)
	d.Evidence = append(d.Evidence, ds.Evidence...)
	for _, l := range d.Loans {
		d.NextIDs.Loan = max(d.NextIDs.Loan, l.ID+1)
	}
	for _, o := range d.Obligations {
		d.NextIDs.Obligation = max(d.NextIDs.Obligation, o.ID+1)
	}
	for _, e := range d.Evidence {
		d.NextIDs.Evidence = max(d.NextIDs.Evidence, e.ID+1)
	}
	return d
}

// NextID returns the current value of counter c and advances it. The caller must
// persist d in the same write as the entity stamped with the id.
func (d *Document) NextID(c Counter) int64 {
	var p *int64
	switch c {
	case CounterLoan:
		p = &d.NextIDs.Loan
	case CounterObligation:
		p = &d.NextIDs.Obligation
	case CounterEvidence:
		p = &d.NextIDs.Evidence
	case CounterAudit:
		p = &d.NextIDs.Audit
	default:
		panic("document: unknown counter " + string(c))
	}
	id := *p
	*p++
	return id
}

// valid reports whether a decoded document has usable counters.
func (d *Document) valid() bool {
	n := d.NextIDs
	return n.Loan >= 1 && n.Obligation >= 1 && n.Evidence >= 1 && n.Audit >= 1
}

// normalize replaces null collections with empty ones so encoding stays stable.
func (d *Document) normalize() {
	if d.Loans == nil {
		d.Loans = []domain.Loan{}
	}
	if d.Obligations == nil {
		d.Obligations = []domain.Obligation{}
	}
	if d.Evidence == nil {
		d.Evidence = []domain.Evidence{}
	}
	if d.AuditEvents == nil {
		d.AuditEvents = []domain.AuditEvent{}
	}
}

// FindLoan returns the index of loan id or -1.
func (d *Document) FindLoan(id int64) int {
	for i := range d.Loans {
		if d.Loans[i].ID == id {
			return i
		}
	}
	return -1
}

// FindObligation returns the index of obligation id or -1.
func (d *Document) FindObligation(id int64) int {
	for i := range d.Obligations {
		if d.Obligations[i].ID == id {
			return i
		}
	}
	return -1
}

// FindEvidence returns the index of evidence id or -1.
func (d *Document) FindEvidence(id int64) int {
	for i := range d.Evidence {
		if d.Evidence[i].ID == id {
			return i
		}
	}
	return -1
}
