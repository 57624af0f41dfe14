package obligation

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// CompleteObligation sets status to COMPLETED whatever the current status is.
func (s *Service) CompleteObligation(ctx context.Context, id int64) (*domain.Obligation, error) {
	return s.transition(ctx, id, domain.StatusCompleted, domain.AuditActionCompleted)
}

// ReopenObligation sets status to ON_TRACK whatever the current status is.
func (s *Service) ReopenObligation(ctx context.Context, id int64) (*domain.Obligation, error) {
	return s.transition(ctx, id, domain.StatusOnTrack, domain.AuditActionReopened)
}

func (s *Service) transition(ctx context.Context, id int64, status domain.ObligationStatus, action domain.AuditAction) (*domain.Obligation, error) {
	updated, err := s.apply(ctx, id, domain.ObligationPatch{Status: &status}, action)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "obligation "+action.String(),
		slog.Int64("obligation_id", id),
		slog.Int64("loan_id", updated.LoanID),
	)

	return updated, nil
}
