package domain

import "time"

// AuditEvent is an immutable log entry recording one action on one entity.
type AuditEvent struct {
	ID          int64       `json:"id"`
	EntityType  EntityType  `json:"entity_type"`
	EntityID    int64       `json:"entity_id"`
	Action      AuditAction `json:"action"`
	DetailsJSON string      `json:"details_json"`
	At          time.Time   `json:"at"`
}

// AuditRecord is the write-side shape of an audit event before it is stamped with an id
// and its details serialized.
type AuditRecord struct {
	EntityType EntityType
	EntityID   int64
	Action     AuditAction
	Details    map[string]any
	At         time.Time
}

// AuditFilter narrows an audit query. Nil fields are not applied.
type AuditFilter struct {
	LoanID       *int64
	ObligationID *int64
}

// IsEmpty reports whether no filter is set.
func (f AuditFilter) IsEmpty() bool {
	return f.LoanID == nil && f.ObligationID == nil
}
