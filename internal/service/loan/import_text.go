package loan

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// ImportText accepts agreement text for a loan. Only its length is kept, in a
// "text_imported" audit event; the loan detail is returned unchanged.
func (s *Service) ImportText(ctx context.Context, input ImportTextInput) (*domain.LoanDetail, error) {
	now := s.now()
	textLength := utf8.RuneCountInString(input.Text)

	var detail *domain.LoanDetail
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		detail, getErr = s.GetLoan(txCtx, input.LoanID)
		if getErr != nil {
			return getErr
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			EntityType: domain.EntityTypeLoan,
			EntityID:   input.LoanID,
			Action:     domain.AuditActionTextImported,
			Details:    map[string]any{"text_length": textLength},
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

	s.log.InfoContext(ctx, "loan text imported",
		slog.Int64("loan_id", input.LoanID),
		slog.Int("text_length", textLength),
	)

	return detail, nil
}
