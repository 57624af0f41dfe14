// Package engine is the single entry point to the data engine. It wires the
// document store, repositories and services together and exposes every
// operation as a plain method call.
package engine

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/heartmarshall/covenantops-backend/internal/adapter/document"
	auditrepo "github.com/heartmarshall/covenantops-backend/internal/adapter/document/audit"
	evidencerepo "github.com/heartmarshall/covenantops-backend/internal/adapter/document/evidence"
	loanrepo "github.com/heartmarshall/covenantops-backend/internal/adapter/document/loan"
	obligationrepo "github.com/heartmarshall/covenantops-backend/internal/adapter/document/obligation"
	"github.com/heartmarshall/covenantops-backend/internal/adapter/kv"
	"github.com/heartmarshall/covenantops-backend/internal/config"
	"github.com/heartmarshall/covenantops-backend/internal/metrics"
	auditsvc "github.com/heartmarshall/covenantops-backend/internal/service/audit"
	evidencesvc "github.com/heartmarshall/covenantops-backend/internal/service/evidence"
	exportsvc "github.com/heartmarshall/covenantops-backend/internal/service/export"
	loansvc "github.com/heartmarshall/covenantops-backend/internal/service/loan"
	obligationsvc "github.com/heartmarshall/covenantops-backend/internal/service/obligation"
	seedsvc "github.com/heartmarshall/covenantops-backend/internal/service/seed"
)

// Engine serves all data operations over one key-value store.
type Engine struct {
	store       kv.Store
	docs        *document.Manager
	demoModeKey string
	seedOnStart bool

	loans       *loansvc.Service
	obligations *obligationsvc.Service
	evidence    *evidencesvc.Service
	audit       *auditsvc.Service
	seed        *seedsvc.Service
	export      *exportsvc.Service

	metrics *metrics.Metrics
	log     *slog.Logger
	closeFn func()
}

type options struct {
	clock   func() time.Time
	metrics *metrics.Metrics
	source  rand.Source
}

// Option customizes New.
type Option func(*options)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// WithMetrics records every operation on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithRandSource makes seed generation draw from src instead of a PCG seeded
// from Engine.RandomSeed.
func WithRandSource(src rand.Source) Option {
	return func(o *options) { o.source = src }
}

// New builds an Engine over store. Only cfg.Store keys and cfg.Engine are read.
func New(log *slog.Logger, store kv.Store, cfg config.Config, opts ...Option) *Engine {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	docs := document.NewManager(log, store, cfg.Store.DocumentKey)
	tx := document.NewTxManager(docs)

	loans := loanrepo.New(tx)
	obligations := obligationrepo.New(tx)
	evidence := evidencerepo.New(tx)
	audit := auditrepo.New(tx)

	var gen *seedsvc.Generator
	if o.source != nil {
		gen = seedsvc.NewGeneratorFromSource(o.source, cfg.Engine.EvidencePathPrefix)
	} else {
		gen = seedsvc.NewGenerator(cfg.Engine.RandomSeed, cfg.Engine.EvidencePathPrefix)
	}

	return &Engine{
		store:       store,
		docs:        docs,
		demoModeKey: cfg.Store.DemoModeKey,
		seedOnStart: cfg.Engine.SeedOnFirstRun,

		loans: loansvc.NewService(log, loans, obligations, audit, tx, o.clock),
		obligations: obligationsvc.NewService(log, obligations, audit, tx, o.clock, obligationsvc.Policy{
			StrictStatusTransitions: cfg.Engine.StrictStatusTransitions,
		}),
		evidence: evidencesvc.NewService(log, evidence, obligations, audit, tx, o.clock, evidencesvc.Policy{
			StrictReferences: cfg.Engine.StrictEvidenceReferences,
			PathPrefix:       cfg.Engine.EvidencePathPrefix,
		}),
		audit:  auditsvc.NewService(log, audit),
		seed:   seedsvc.NewService(log, gen, loans, obligations, tx, tx, o.clock),
		export: exportsvc.NewService(log, loans, obligations, evidence, o.clock),

		metrics: o.metrics,
		log:     log.With("component", "engine"),
		closeFn: func() {},
	}
}

// Open connects the store selected by cfg.Store and builds an Engine over it.
// Close releases the store.
func Open(ctx context.Context, log *slog.Logger, cfg config.Config, opts ...Option) (*Engine, error) {
	store, closeFn, err := OpenStore(ctx, log, cfg.Store)
	if err != nil {
		return nil, err
	}
	e := New(log, store, cfg, opts...)
	e.closeFn = closeFn
	log.Info("store opened", slog.String("driver", cfg.Store.Driver))
	return e, nil
}

// Close releases the underlying store.
func (e *Engine) Close() {
	e.closeFn()
}

// observe runs fn and records its outcome under op.
func observe[T any](e *Engine, op string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	e.metrics.ObserveOperation(op, err, time.Since(start))
	return v, err
}
