package obligation

import (
	"context"
	"fmt"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// ListObligations returns the obligations of a loan in creation order. An unknown
// loan yields an empty list.
func (s *Service) ListObligations(ctx context.Context, loanID int64) ([]domain.Obligation, error) {
	obligations, err := s.obligations.ListByLoan(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("list obligations: %w", err)
	}
	return obligations, nil
}
