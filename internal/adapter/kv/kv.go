// Package kv defines the key-value contract that the document layer persists through.
// A store holds opaque string values under string keys; there are no transactions
// beyond a single Set being atomic for its key.
package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Driver identifies a concrete key-value backend.
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverFile     Driver = "file"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverS3       Driver = "s3"
)

func (d Driver) String() string { return string(d) }

func (d Driver) IsValid() bool {
	switch d {
	case DriverMemory, DriverFile, DriverSQLite, DriverPostgres, DriverS3:
		return true
	}
	return false
}

// Store is the byte store contract. Get reports found == false for an absent key
// rather than an error; Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Pinger is implemented by stores that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ErrEmptyKey is returned for blank keys by every driver.
var ErrEmptyKey = errors.New("kv: empty key")

// CheckKey rejects blank keys.
func CheckKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}

// Ping checks s when it supports it and is a no-op otherwise.
func Ping(ctx context.Context, s Store) error {
	p, ok := s.(Pinger)
	if !ok {
		return nil
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("kv ping: %w", err)
	}
	return nil
}
