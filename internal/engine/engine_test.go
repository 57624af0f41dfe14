package engine

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/covenantops-backend/internal/adapter/kv"
	"github.com/heartmarshall/covenantops-backend/internal/adapter/kv/memory"
	"github.com/heartmarshall/covenantops-backend/internal/config"
	"github.com/heartmarshall/covenantops-backend/internal/domain"
	"github.com/heartmarshall/covenantops-backend/internal/metrics"
)

const (
	docKey  = "covenantops-demo-data"
	demoKey = "covenantops-demo-mode"
)

var start = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

// tickingClock advances one second per reading so audit order is unambiguous.
type tickingClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func testConfig() config.Config {
	return config.Config{
		Store: config.StoreConfig{
			Driver:      "memory",
			DocumentKey: docKey,
			DemoModeKey: demoKey,
		},
		Engine: config.EngineConfig{
			SeedOnFirstRun:     true,
			EvidencePathPrefix: "/demo/evidence/",
		},
	}
}

func newEngine(t *testing.T, store kv.Store, cfg config.Config, opts ...Option) *Engine {
	t.Helper()
	clock := &tickingClock{t: start}
	opts = append([]Option{WithClock(clock.Now), WithRandSource(rand.NewPCG(1, 2))}, opts...)
	return New(slog.Default(), store, cfg, opts...)
}

func ptr[T any](v T) *T { return &v }

func TestEngine_ExampleScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, memory.New(), testConfig())

	loan, err := e.CreateLoan(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(1), loan.ID)

	ob, err := e.CreateObligation(ctx, loan.ID, domain.ObligationPatch{Name: ptr("X")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ob.ID)
	assert.Equal(t, domain.StatusOnTrack, ob.Status)
	assert.Equal(t, domain.ObligationTypeReporting, ob.ObligationType)
	assert.Equal(t, domain.FrequencyOnce, ob.Frequency)
	assert.Equal(t, "", ob.PartyResponsible)

	done, err := e.CompleteObligation(ctx, ob.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, done.Status)

	events, err := e.ListAudit(ctx, ptr(loan.ID), nil)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, domain.AuditActionCompleted, events[0].Action)
	assert.Equal(t, domain.AuditActionCreated, events[1].Action)
	assert.Equal(t, domain.EntityTypeObligation, events[1].EntityType)
	assert.Equal(t, domain.AuditActionCreated, events[2].Action)
	assert.Equal(t, domain.EntityTypeLoan, events[2].EntityType)

	detail, err := e.GetLoan(ctx, loan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LoanSummary{Total: 1, Completed: 1}, detail.Summary)
}

func TestEngine_FailedCreateAllocatesNoID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, memory.New(), testConfig())

	_, err := e.CreateObligation(ctx, 99, domain.ObligationPatch{Name: ptr("X")})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "loan 99")

	loan, err := e.CreateLoan(ctx, "A")
	require.NoError(t, err)
	ob, err := e.CreateObligation(ctx, loan.ID, domain.ObligationPatch{Name: ptr("X")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ob.ID)

	events, err := e.ListAudit(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, events, 2, "the failed create left no audit event")
}

func TestEngine_IDsNeverReused(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, memory.New(), testConfig())

	loan, err := e.CreateLoan(ctx, "A")
	require.NoError(t, err)
	_, err = e.CreateObligation(ctx, loan.ID, domain.ObligationPatch{})
	require.NoError(t, err)
	second, err := e.CreateObligation(ctx, loan.ID, domain.ObligationPatch{})
	require.NoError(t, err)

	_, err = e.DeleteObligation(ctx, second.ID)
	require.NoError(t, err)

	third, err := e.CreateObligation(ctx, loan.ID, domain.ObligationPatch{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestEngine_CascadeDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, memory.New(), testConfig())

	loan, err := e.CreateLoan(ctx, "A")
	require.NoError(t, err)
	ob, err := e.CreateObligation(ctx, loan.ID, domain.ObligationPatch{Name: ptr("X")})
	require.NoError(t, err)
	keep, err := e.CreateObligation(ctx, loan.ID, domain.ObligationPatch{Name: ptr("Y")})
	require.NoError(t, err)

	for _, name := range []string{"a.pdf", "b.pdf"} {
		_, err := e.UploadEvidence(ctx, ob.ID, Upload{Filename: name, SizeBytes: 10})
		require.NoError(t, err)
	}
	kept, err := e.UploadEvidence(ctx, keep.ID, Upload{Filename: "c.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "/demo/evidence/c.pdf", kept.FilePath)

	before, err := e.ListAudit(ctx, nil, nil)
	require.NoError(t, err)

	res, err := e.DeleteObligation(ctx, ob.ID)
	require.NoError(t, err)
	assert.True(t, res.Deleted)

	files, err := e.ListEvidence(ctx, ob.ID)
	require.NoError(t, err)
	assert.Empty(t, files)

	files, err = e.ListEvidence(ctx, keep.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Evidence{*kept}, files)

	after, err := e.ListAudit(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1, "audit log only grows")

	scoped, err := e.ListAudit(ctx, ptr(loan.ID), nil)
	require.NoError(t, err)
	for _, ev := range scoped {
		if ev.EntityType == domain.EntityTypeObligation {
			assert.NotEqual(t, ob.ID, ev.EntityID, "events of a deleted obligation drop out of loan scope")
		}
	}

	_, err = e.DeleteObligation(ctx, ob.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEngine_TransitionsIgnorePriorStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, memory.New(), testConfig())

	loan, err := e.CreateLoan(ctx, "A")
	require.NoError(t, err)

	for _, status := range domain.AllStatuses {
		ob, err := e.CreateObligation(ctx, loan.ID, domain.ObligationPatch{Status: ptr(status)})
		require.NoError(t, err)

		reopened, err := e.ReopenObligation(ctx, ob.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusOnTrack, reopened.Status)

		completed, err := e.CompleteObligation(ctx, ob.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, completed.Status)

		completed, err = e.CompleteObligation(ctx, ob.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, completed.Status)
	}

	_, err = e.CompleteObligation(ctx, 999)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = e.ReopenObligation(ctx, 999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEngine_PartialUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, memory.New(), testConfig())

	loan, err := e.CreateLoan(ctx, "A")
	require.NoError(t, err)
	ob, err := e.CreateObligation(ctx, loan.ID, domain.ObligationPatch{
		Name:        ptr("X"),
		Description: ptr("keep me"),
		DueRule:     domain.Some("quarterly"),
		Confidence:  domain.Some(0.9),
	})
	require.NoError(t, err)

	updated, err := e.UpdateObligation(ctx, ob.ID, domain.ObligationPatch{Name: ptr("Y")})
	require.NoError(t, err)

	assert.Equal(t, "Y", updated.Name)
	assert.True(t, updated.UpdatedAt.After(ob.UpdatedAt))

	want := *ob
	want.Name = "Y"
	want.UpdatedAt = updated.UpdatedAt
	assert.Equal(t, want, *updated)

	cleared, err := e.UpdateObligation(ctx, ob.ID, domain.ObligationPatch{DueRule: domain.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.DueRule)
	assert.Equal(t, "keep me", cleared.Description)

	_, err = e.UpdateObligation(ctx, 42, domain.ObligationPatch{Name: ptr("Z")})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEngine_PersistsAcrossRestart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.New()
	first := newEngine(t, store, testConfig())

	loan, err := first.CreateLoan(ctx, "A")
	require.NoError(t, err)
	ob, err := first.CreateObligation(ctx, loan.ID, domain.ObligationPatch{
		Name:      ptr("X"),
		NextDueAt: domain.Some(start.Add(72 * time.Hour)),
		DueDate:   domain.Some("2026-06-04"),
	})
	require.NoError(t, err)
	ev, err := first.UploadEvidence(ctx, ob.ID, Upload{Filename: "a.pdf", Note: ptr("n")})
	require.NoError(t, err)

	second := newEngine(t, store, testConfig())

	loans, err := second.ListLoans(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Loan{*loan}, loans)

	obligations, err := second.ListObligations(ctx, loan.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Obligation{*ob}, obligations)

	files, err := second.ListEvidence(ctx, ob.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Evidence{*ev}, files)

	next, err := second.CreateLoan(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestEngine_MalformedDocumentTreatedAsAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Set(ctx, docKey, "{not json"))
	e := newEngine(t, store, testConfig())

	loans, err := e.ListLoans(ctx)
	require.NoError(t, err)
	assert.Empty(t, loans)

	seeded, err := e.Bootstrap(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	loans, err = e.ListLoans(ctx)
	require.NoError(t, err)
	assert.Len(t, loans, 2)
}

func TestEngine_Bootstrap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("seeds once", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, memory.New(), testConfig())

		seeded, err := e.Bootstrap(ctx)
		require.NoError(t, err)
		assert.True(t, seeded)

		seeded, err = e.Bootstrap(ctx)
		require.NoError(t, err)
		assert.False(t, seeded)
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.Engine.SeedOnFirstRun = false
		e := newEngine(t, memory.New(), cfg)

		seeded, err := e.Bootstrap(ctx)
		require.NoError(t, err)
		assert.False(t, seeded)

		loans, err := e.ListLoans(ctx)
		require.NoError(t, err)
		assert.Empty(t, loans)
	})
}

func TestEngine_ResetDemoData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, memory.New(), testConfig())

	for range 3 {
		_, err := e.CreateLoan(ctx, "old")
		require.NoError(t, err)
	}

	res, err := e.ResetDemoData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Loans)

	loans, err := e.ListLoans(ctx)
	require.NoError(t, err)
	require.Len(t, loans, 2)
	assert.Equal(t, "DemoCo Facility Agreement", loans[0].Title)

	events, err := e.ListAudit(ctx, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, events)

	statuses := map[domain.ObligationStatus]bool{}
	for _, l := range loans {
		obligations, err := e.ListObligations(ctx, l.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(obligations), 8)
		assert.LessOrEqual(t, len(obligations), 12)
		for _, o := range obligations {
			statuses[o.Status] = true
		}
	}
	assert.Len(t, statuses, 4)

	loan, err := e.CreateLoan(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, int64(3), loan.ID)
}

func TestEngine_DemoMode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.New()
	cfg := testConfig()
	cfg.Engine.SeedOnFirstRun = false
	e := newEngine(t, store, cfg)

	on, err := e.DemoMode(ctx)
	require.NoError(t, err)
	assert.False(t, on)

	require.NoError(t, e.SetDemoMode(ctx, true))
	on, err = e.DemoMode(ctx)
	require.NoError(t, err)
	assert.True(t, on)

	raw, _, err := store.Get(ctx, demoKey)
	require.NoError(t, err)
	assert.Equal(t, "true", raw)

	loans, err := e.ListLoans(ctx)
	require.NoError(t, err)
	assert.Len(t, loans, 2, "enabling demo mode seeds an empty store")

	require.NoError(t, e.SetDemoMode(ctx, false))
	on, err = e.DemoMode(ctx)
	require.NoError(t, err)
	assert.False(t, on)

	loans, err = e.ListLoans(ctx)
	require.NoError(t, err)
	assert.Len(t, loans, 2, "disabling keeps the data")
}

func TestEngine_Extract(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, memory.New(), testConfig())

	loan, err := e.CreateLoan(ctx, "A")
	require.NoError(t, err)

	res, err := e.Extract(ctx, loan.ID, ptr("Section 5.1 The Borrower shall..."))
	require.NoError(t, err)
	assert.Empty(t, res.Obligations)

	res, err = e.Extract(ctx, loan.ID, nil)
	require.NoError(t, err)
	require.Len(t, res.Obligations, 6)
	for i, o := range res.Obligations {
		assert.Equal(t, int64(i+1), o.ID)
	}

	again, err := e.Extract(ctx, loan.ID, ptr("Demo data generation"))
	require.NoError(t, err)
	assert.Equal(t, res.Obligations, again.Obligations)

	listed, err := e.ListObligations(ctx, loan.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Obligations, listed)

	_, err = e.Extract(ctx, 77, nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEngine_ImportText(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, memory.New(), testConfig())

	loan, err := e.CreateLoan(ctx, "A")
	require.NoError(t, err)

	detail, err := e.ImportText(ctx, loan.ID, "agreement")
	require.NoError(t, err)
	assert.Equal(t, loan.ID, detail.ID)

	events, err := e.ListAudit(ctx, ptr(loan.ID), nil)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.AuditActionTextImported, events[0].Action)
	assert.JSONEq(t, `{"text_length":9}`, events[0].DetailsJSON)

	_, err = e.ImportText(ctx, 5, "x")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEngine_AuditObligationScope(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, memory.New(), testConfig())

	loan, err := e.CreateLoan(ctx, "A")
	require.NoError(t, err)
	ob, err := e.CreateObligation(ctx, loan.ID, domain.ObligationPatch{})
	require.NoError(t, err)
	other, err := e.CreateObligation(ctx, loan.ID, domain.ObligationPatch{})
	require.NoError(t, err)
	_, err = e.UploadEvidence(ctx, ob.ID, Upload{Filename: "a.pdf"})
	require.NoError(t, err)
	_, err = e.UploadEvidence(ctx, other.ID, Upload{Filename: "b.pdf"})
	require.NoError(t, err)

	events, err := e.ListAudit(ctx, nil, ptr(ob.ID))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EntityTypeEvidence, events[0].EntityType)
	assert.Equal(t, domain.EntityTypeObligation, events[1].EntityType)
	assert.Equal(t, ob.ID, events[1].EntityID)
}

func TestEngine_StrictModes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("lax", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, memory.New(), testConfig())
		loan, err := e.CreateLoan(ctx, "A")
		require.NoError(t, err)
		ob, err := e.CreateObligation(ctx, loan.ID, domain.ObligationPatch{})
		require.NoError(t, err)

		updated, err := e.UpdateObligation(ctx, ob.ID, domain.ObligationPatch{Status: ptr(domain.StatusOverdue)})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusOverdue, updated.Status)

		orphan, err := e.UploadEvidence(ctx, 404, Upload{Filename: "x.pdf"})
		require.NoError(t, err)
		assert.Equal(t, int64(404), orphan.ObligationID)
	})

	t.Run("strict", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.Engine.StrictStatusTransitions = true
		cfg.Engine.StrictEvidenceReferences = true
		e := newEngine(t, memory.New(), cfg)
		loan, err := e.CreateLoan(ctx, "A")
		require.NoError(t, err)
		ob, err := e.CreateObligation(ctx, loan.ID, domain.ObligationPatch{})
		require.NoError(t, err)

		_, err = e.UpdateObligation(ctx, ob.ID, domain.ObligationPatch{Status: ptr(domain.StatusOverdue)})
		require.ErrorIs(t, err, domain.ErrValidation)

		_, err = e.UploadEvidence(ctx, 404, Upload{Filename: "x.pdf"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEngine_ExportsUnknownLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEngine(t, memory.New(), testConfig())

	_, err := e.ExportCalendar(ctx, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = e.ExportCompliancePacket(ctx, 1, "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEngine_HealthAndMetrics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := metrics.New()
	e := newEngine(t, memory.New(), testConfig(), WithMetrics(m))

	h, err := e.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Status)

	_, err = e.GetLoan(ctx, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)

	n, err := testutil.GatherAndCount(m.Registry(), "covenantops_engine_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
