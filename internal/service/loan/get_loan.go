package loan

import (
	"context"
	"fmt"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// GetLoan returns a loan together with its per-status obligation summary.
func (s *Service) GetLoan(ctx context.Context, id int64) (*domain.LoanDetail, error) {
	loan, err := s.loans.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get loan: %w", err)
	}

	obligations, err := s.obligations.ListByLoan(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list obligations: %w", err)
	}

	return &domain.LoanDetail{
		Loan:    *loan,
		Summary: domain.Summarize(obligations),
	}, nil
}
