package loan

import (
	"context"
	"fmt"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// ListLoans returns every loan in creation order.
func (s *Service) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.loans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return loans, nil
}
