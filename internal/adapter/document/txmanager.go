package document

import (
	"context"
	"sync"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

type docCtxKey struct{}

func withDoc(ctx context.Context, doc *Document) context.Context {
	return context.WithValue(ctx, docCtxKey{}, doc)
}

func fromCtx(ctx context.Context) (*Document, bool) {
	doc, ok := ctx.Value(docCtxKey{}).(*Document)
	return doc, ok
}

// TxManager runs read-mutate-write units over the document. One unit loads the
// document once, exposes it to repositories through the context and saves it once
// when fn succeeds. When fn fails the in-memory copy is dropped, so nothing it did,
// id allocation included, becomes visible.
//
// RunInTx called with a context that already carries a document joins that unit.
type TxManager struct {
	m  *Manager
	mu sync.Mutex
}

// NewTxManager creates a TxManager over m.
func NewTxManager(m *Manager) *TxManager {
	return &TxManager{m: m}
}

// RunInTx executes fn inside one document write. Panics from fn propagate after
// the lock is released; the document is not saved.
func (t *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := fromCtx(ctx); ok {
		return fn(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := t.m.LoadOrEmpty(ctx)
	if err != nil {
		return err
	}

	if err := fn(withDoc(ctx, doc)); err != nil {
		return err
	}

	return t.m.Save(ctx, doc)
}

// Mutate runs fn against the document of the enclosing unit, or in a unit of its own.
func (t *TxManager) Mutate(ctx context.Context, fn func(doc *Document) error) error {
	return t.RunInTx(ctx, func(ctx context.Context) error {
		doc, _ := fromCtx(ctx)
		return fn(doc)
	})
}

// Replace overwrites the stored document with doc under the lock.
func (t *TxManager) Replace(ctx context.Context, doc *Document) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.m.Save(ctx, doc)
}

// ReplaceDataset stores ds as the whole dataset, resetting counters and the audit log.
func (t *TxManager) ReplaceDataset(ctx context.Context, ds domain.Dataset) error {
	return t.Replace(ctx, FromDataset(ds))
}

// Snapshot returns the document of the enclosing unit or a freshly loaded one.
func (t *TxManager) Snapshot(ctx context.Context) (*Document, error) {
	return t.m.Snapshot(ctx)
}
