package evidence

import (
	"context"
	"fmt"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// ListEvidence returns the evidence of an obligation in upload order.
func (s *Service) ListEvidence(ctx context.Context, obligationID int64) ([]domain.Evidence, error) {
	items, err := s.evidence.ListByObligation(ctx, obligationID)
	if err != nil {
		return nil, fmt.Errorf("list evidence: %w", err)
	}
	return items, nil
}
