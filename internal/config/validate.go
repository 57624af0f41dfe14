package config

import (
	"fmt"
	"strings"
)

var knownDrivers = map[string]bool{
	"memory":   true,
	"file":     true,
	"sqlite":   true,
	"postgres": true,
	"s3":       true,
}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if strings.TrimSpace(c.Engine.EvidencePathPrefix) == "" {
		return fmt.Errorf("engine.evidence_path_prefix must not be empty")
	}

	return nil
}

func (s *StoreConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if !knownDrivers[s.Driver] {
		return fmt.Errorf("unknown driver %q", s.Driver)
	}

	if strings.TrimSpace(s.DocumentKey) == "" {
		return fmt.Errorf("document_key must not be empty")
	}
	if strings.TrimSpace(s.DemoModeKey) == "" {
		return fmt.Errorf("demo_mode_key must not be empty")
	}
	if s.DocumentKey == s.DemoModeKey {
		return fmt.Errorf("document_key and demo_mode_key must differ (both %q)", s.DocumentKey)
	}

	switch s.Driver {
	case "file":
		if s.File.Dir == "" {
			return fmt.Errorf("file.dir is required for the file driver")
		}
	case "sqlite":
		if s.SQLite.Path == "" {
			return fmt.Errorf("sqlite.path is required for the sqlite driver")
		}
	case "postgres":
		if s.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required for the postgres driver")
		}
		if s.Postgres.MinConns > s.Postgres.MaxConns {
			return fmt.Errorf("postgres.min_conns (%d) exceeds max_conns (%d)", s.Postgres.MinConns, s.Postgres.MaxConns)
		}
	case "s3":
		if s.S3.Bucket == "" {
			return fmt.Errorf("s3.bucket is required for the s3 driver")
		}
		if (s.S3.AccessKeyID == "") != (s.S3.SecretAccessKey == "") {
			return fmt.Errorf("s3.access_key_id and s3.secret_access_key must be set together")
		}
	}

	return nil
}
