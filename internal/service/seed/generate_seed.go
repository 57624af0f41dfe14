package seed

import (
	"context"
	"fmt"
	"log/slog"
)

// GenerateSeed replaces all stored data with a freshly generated dataset. Counters
// restart past the new ids and the audit log is cleared.
func (s *Service) GenerateSeed(ctx context.Context) (SeedResult, error) {
	ds := s.gen.Dataset(s.now())

	if err := s.store.ReplaceDataset(ctx, ds); err != nil {
		return SeedResult{}, fmt.Errorf("store seed: %w", err)
	}

	res := SeedResult{
		Loans:       len(ds.Loans),
		Obligations: len(ds.Obligations),
		Evidence:    len(ds.Evidence),
	}
	s.log.InfoContext(ctx, "demo data generated",
		slog.Int("loans", res.Loans),
		slog.Int("obligations", res.Obligations),
		slog.Int("evidence", res.Evidence),
	)
	return res, nil
}
