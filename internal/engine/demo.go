package engine

import (
	"context"
	"fmt"
	"log/slog"

	seedsvc "github.com/heartmarshall/covenantops-backend/internal/service/seed"
)

const (
	demoOn  = "true"
	demoOff = "false"
)

// SeedResult counts what a reset wrote.
type SeedResult = seedsvc.SeedResult

// DemoMode reports whether the demo-mode flag is set. An absent flag is off.
func (e *Engine) DemoMode(ctx context.Context) (bool, error) {
	return observe(e, "demoMode", func() (bool, error) {
		v, _, err := e.store.Get(ctx, e.demoModeKey)
		if err != nil {
			return false, fmt.Errorf("read demo mode: %w", err)
		}
		return v == demoOn, nil
	})
}

// SetDemoMode stores the flag. Turning it on seeds when there is no dataset yet.
func (e *Engine) SetDemoMode(ctx context.Context, on bool) error {
	_, err := observe(e, "setDemoMode", func() (struct{}, error) {
		value := demoOff
		if on {
			value = demoOn
		}
		if err := e.store.Set(ctx, e.demoModeKey, value); err != nil {
			return struct{}{}, fmt.Errorf("write demo mode: %w", err)
		}
		e.log.InfoContext(ctx, "demo mode set", slog.Bool("on", on))

		if on {
			if _, err := e.seedIfEmpty(ctx); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	return err
}

// Bootstrap seeds the store on first run when configured to. It reports whether
// it generated data.
func (e *Engine) Bootstrap(ctx context.Context) (bool, error) {
	if !e.seedOnStart {
		return false, nil
	}
	return e.seedIfEmpty(ctx)
}

// ResetDemoData replaces everything with a fresh seed, audit log included.
func (e *Engine) ResetDemoData(ctx context.Context) (SeedResult, error) {
	return observe(e, "resetDemoData", func() (SeedResult, error) {
		return e.seed.GenerateSeed(ctx)
	})
}

func (e *Engine) seedIfEmpty(ctx context.Context) (bool, error) {
	exists, err := e.docs.Exists(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if _, err := e.seed.GenerateSeed(ctx); err != nil {
		return false, err
	}
	return true, nil
}
