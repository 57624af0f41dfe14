package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when neither CONFIG_PATH nor an explicit path is given.
const DefaultPath = "./config.yaml"

// Load reads configuration from CONFIG_PATH (or DefaultPath) and the environment.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom reads configuration from the YAML file at path, then the environment.
// Priority: ENV > YAML > env-default tags. An empty path means DefaultPath,
// which may be missing; an explicit path must exist.
func LoadFrom(path string) (*Config, error) {
	cfg := defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// defaults holds the true-by-default switches. cleanenv treats false as unset, so
// these cannot be env-default tags without losing an explicit false.
func defaults() Config {
	return Config{
		Store: StoreConfig{
			Postgres: DatabaseConfig{AutoMigrate: true},
		},
		Engine: EngineConfig{SeedOnFirstRun: true},
	}
}
