// Package memory provides a process-local kv.Store.
package memory

import (
	"context"
	"sync"

	"github.com/heartmarshall/covenantops-backend/internal/adapter/kv"
)

// Store keeps values in a map guarded by a RWMutex. Contents are lost on exit.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	if err := kv.CheckKey(key); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	if err := kv.CheckKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	if err := kv.CheckKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }
