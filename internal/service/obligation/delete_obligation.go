package obligation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// DeleteObligation removes an obligation and every evidence row attached to it.
func (s *Service) DeleteObligation(ctx context.Context, id int64) (DeleteResult, error) {
	now := s.now()

	var (
		loanID  int64
		removed int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, getErr := s.obligations.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("delete obligation: %w", getErr)
		}
		loanID = existing.LoanID

		var deleteErr error
		removed, deleteErr = s.obligations.Delete(txCtx, id)
		if deleteErr != nil {
			return fmt.Errorf("delete obligation: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			EntityType: domain.EntityTypeObligation,
			EntityID:   id,
			Action:     domain.AuditActionDeleted,
			Details: map[string]any{
				"loan_id":          loanID,
				"evidence_removed": removed,
			},
			At: now,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return DeleteResult{}, err
	}

	s.log.InfoContext(ctx, "obligation deleted",
		slog.Int64("obligation_id", id),
		slog.Int64("loan_id", loanID),
		slog.Int("evidence_removed", removed),
	)

	return DeleteResult{Deleted: true}, nil
}
