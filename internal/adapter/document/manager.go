package document

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/covenantops-backend/internal/adapter/kv"
	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

// Manager reads and writes the dataset document through a kv.Store.
type Manager struct {
	store kv.Store
	key   string
	log   *slog.Logger
}

// NewManager creates a Manager storing the document under key.
func NewManager(log *slog.Logger, store kv.Store, key string) *Manager {
	return &Manager{
		store: store,
		key:   key,
		log:   log.With("component", "document"),
	}
}

// Load returns the stored document, or nil when there is none. A document that
// does not decode, or whose counters are unusable, is logged and reported as absent.
func (m *Manager) Load(ctx context.Context) (*Document, error) {
	raw, found, err := m.store.Get(ctx, m.key)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	if !found || raw == "" {
		return nil, nil
	}

	doc, err := decode(raw)
	if err != nil {
		m.log.WarnContext(ctx, "stored document ignored",
			slog.String("key", m.key),
			slog.String("error", err.Error()),
		)
		return nil, nil
	}
	return doc, nil
}

// LoadOrEmpty returns the stored document or a fresh empty one.
func (m *Manager) LoadOrEmpty(ctx context.Context) (*Document, error) {
	doc, err := m.Load(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return Empty(), nil
	}
	return doc, nil
}

// Save writes doc back as a single value.
func (m *Manager) Save(ctx context.Context, doc *Document) error {
	doc.normalize()
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := m.store.Set(ctx, m.key, string(data)); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// Exists reports whether a usable document is stored.
func (m *Manager) Exists(ctx context.Context) (bool, error) {
	doc, err := m.Load(ctx)
	if err != nil {
		return false, err
	}
	return doc != nil, nil
}

// Snapshot returns the document bound to ctx by RunInTx, or a freshly loaded one.
func (m *Manager) Snapshot(ctx context.Context) (*Document, error) {
	if doc, ok := fromCtx(ctx); ok {
		return doc, nil
	}
	return m.LoadOrEmpty(ctx)
}

// Ping checks the underlying store when it supports it.
func (m *Manager) Ping(ctx context.Context) error {
	return kv.Ping(ctx, m.store)
}

func decode(raw string) (*Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	if !doc.valid() {
		return nil, fmt.Errorf("%w: counters must be >= 1", domain.ErrMalformedDocument)
	}
	doc.normalize()
	return &doc, nil
}
