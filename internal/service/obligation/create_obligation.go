package obligation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// CreateObligation adds an obligation to an existing loan, filling defaults for
// absent fields. An unknown loan fails with ErrNotFound before any id is allocated.
func (s *Service) CreateObligation(ctx context.Context, input CreateObligationInput) (*domain.Obligation, error) {
	now := s.now()
	draft := domain.NewObligation(input.LoanID, input.Fields, now)

	var created *domain.Obligation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.obligations.Create(txCtx, &draft)
		if createErr != nil {
			return fmt.Errorf("create obligation: %w", createErr)
		}

		details := input.Fields.Fields()
		details["loan_id"] = input.LoanID
		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			EntityType: domain.EntityTypeObligation,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreated,
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

	s.log.InfoContext(ctx, "obligation created",
		slog.Int64("loan_id", created.LoanID),
		slog.Int64("obligation_id", created.ID),
		slog.String("status", created.Status.String()),
	)

	return created, nil
}
