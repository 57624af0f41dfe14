package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/covenantops-backend/internal/adapter/kv"
	"github.com/heartmarshall/covenantops-backend/internal/adapter/kv/file"
	"github.com/heartmarshall/covenantops-backend/internal/adapter/kv/memory"
	kvpostgres "github.com/heartmarshall/covenantops-backend/internal/adapter/kv/postgres"
	kvs3 "github.com/heartmarshall/covenantops-backend/internal/adapter/kv/s3"
	"github.com/heartmarshall/covenantops-backend/internal/adapter/kv/sqlite"
	"github.com/heartmarshall/covenantops-backend/internal/config"
)

// OpenStore connects the key-value backend selected by cfg.Driver. The returned
// close function releases it and is never nil.
func OpenStore(ctx context.Context, log *slog.Logger, cfg config.StoreConfig) (kv.Store, func(), error) {
	noop := func() {}

	switch kv.Driver(strings.ToLower(cfg.Driver)) {
	case kv.DriverMemory:
		return memory.New(), noop, nil

	case kv.DriverFile:
		s, err := file.New(cfg.File.Dir)
		if err != nil {
			return nil, noop, fmt.Errorf("open file store: %w", err)
		}
		return s, noop, nil

	case kv.DriverSQLite:
		s, err := sqlite.New(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, func() {
			if err := s.Close(); err != nil {
				log.Warn("close sqlite store", slog.String("error", err.Error()))
			}
		}, nil

	case kv.DriverPostgres:
		if cfg.Postgres.AutoMigrate {
			if err := kvpostgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
				return nil, noop, fmt.Errorf("migrate postgres store: %w", err)
			}
		}
		pool, err := kvpostgres.NewPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, noop, fmt.Errorf("open postgres store: %w", err)
		}
		return kvpostgres.New(pool), pool.Close, nil

	case kv.DriverS3:
		s, err := kvs3.New(ctx, kvs3.Config{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			PathStyle:       cfg.S3.PathStyle,
			Prefix:          cfg.S3.Prefix,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("open s3 store: %w", err)
		}
		return s, noop, nil
	}

	return nil, noop, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
