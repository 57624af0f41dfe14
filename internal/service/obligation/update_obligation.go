package obligation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// UpdateObligation merges the supplied fields over the stored obligation and
// refreshes updated_at, even when no field changes.
func (s *Service) UpdateObligation(ctx context.Context, input UpdateObligationInput) (*domain.Obligation, error) {
	if err := input.Validate(s.policy); err != nil {
		return nil, err
	}

	updated, err := s.apply(ctx, input.ObligationID, input.Fields, domain.AuditActionUpdated)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "obligation updated",
		slog.Int64("obligation_id", updated.ID),
		slog.Int("fields", len(input.Fields.Fields())),
	)

	return updated, nil
}

// apply writes patch and one audit event of the given action in a single unit.
func (s *Service) apply(ctx context.Context, id int64, patch domain.ObligationPatch, action domain.AuditAction) (*domain.Obligation, error) {
	now := s.now()

	var updated *domain.Obligation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.obligations.Update(txCtx, id, patch, now)
		if updateErr != nil {
			return fmt.Errorf("%s obligation: %w", verb(action), updateErr)
		}

		details := patch.Fields()
		details["loan_id"] = updated.LoanID
		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			EntityType: domain.EntityTypeObligation,
			EntityID:   id,
			Action:     action,
			Details:    details,
			At:         now,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func verb(action domain.AuditAction) string {
	switch action {
	case domain.AuditActionCompleted:
		return "complete"
	case domain.AuditActionReopened:
		return "reopen"
	}
	return "update"
}
