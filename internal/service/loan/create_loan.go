package loan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// CreateLoan stores a new loan and records a "created" audit event in the same write.
func (s *Service) CreateLoan(ctx context.Context, input CreateLoanInput) (*domain.Loan, error) {
	now := s.now()

	var loan *domain.Loan
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		loan, createErr = s.loans.Create(txCtx, &domain.Loan{
			Title:     input.Title,
			CreatedAt: now,
		})
		if createErr != nil {
			return fmt.Errorf("create loan: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			EntityType: domain.EntityTypeLoan,
			EntityID:   loan.ID,
			Action:     domain.AuditActionCreated,
			Details:    map[string]any{"title": input.Title},
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

	s.log.InfoContext(ctx, "loan created",
		slog.Int64("loan_id", loan.ID),
		slog.String("title", loan.Title),
	)

	return loan, nil
}
