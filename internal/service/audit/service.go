// Package audit exposes read access to the audit log.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

type auditRepo interface {
	Query(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEvent, error)
}

// Service provides audit queries.
type Service struct {
	events auditRepo
	log    *slog.Logger
}

// NewService creates a new Audit service.
func NewService(log *slog.Logger, events auditRepo) *Service {
	return &Service{
		events: events,
		log:    log.With("service", "audit"),
	}
}

// ListAudit returns audit events newest first, optionally scoped to a loan
// and/or an obligation.
func (s *Service) ListAudit(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEvent, error) {
	events, err := s.events.Query(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}
	s.log.DebugContext(ctx, "audit listed", slog.Int("count", len(events)))
	return events, nil
}
