package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// Extract stands in for obligation extraction. Real text yields nothing and the
// loan is not looked up. For the sentinel or no text, a loan that already has
// obligations gets them back as-is; an empty loan gets ExtractCount generated
// ones, stored in one write.
func (s *Service) Extract(ctx context.Context, input ExtractInput) ([]domain.Obligation, error) {
	if input.Text != nil {
		text := strings.TrimSpace(*input.Text)
		if text != "" && text != SentinelText {
			return []domain.Obligation{}, nil
		}
	}

	now := s.now()
	var (
		out       []domain.Obligation
		generated bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.loans.GetByID(txCtx, input.LoanID); err != nil {
			return err
		}

		existing, err := s.obligations.ListByLoan(txCtx, input.LoanID)
		if err != nil {
			return fmt.Errorf("list obligations: %w", err)
		}
		if len(existing) > 0 {
			out = existing
			return nil
		}

		drafts := s.gen.Obligations(input.LoanID, ExtractCount, now)
		out = make([]domain.Obligation, 0, len(drafts))
		for i := range drafts {
			created, err := s.obligations.Create(txCtx, &drafts[i])
			if err != nil {
				return fmt.Errorf("create obligation: %w", err)
			}
			out = append(out, *created)
		}
		generated = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if generated {
		s.log.InfoContext(ctx, "obligations generated",
			slog.Int64("loan_id", input.LoanID),
			slog.Int("count", len(out)),
		)
	}
	return out, nil
}
