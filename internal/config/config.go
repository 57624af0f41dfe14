package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	CORS   CORSConfig   `yaml:"cors"`
	Store  StoreConfig  `yaml:"store"`
	Engine EngineConfig `yaml:"engine"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxUploadBytes bounds multipart evidence uploads; only name and size are kept.
	MaxUploadBytes int64 `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"33554432"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StoreConfig selects and configures the key-value backend holding the dataset.
type StoreConfig struct {
	Driver      string `yaml:"driver"        env:"STORE_DRIVER"        env-default:"file"`
	DocumentKey string `yaml:"document_key"  env:"STORE_DOCUMENT_KEY"  env-default:"covenantops-demo-data"`
	DemoModeKey string `yaml:"demo_mode_key" env:"STORE_DEMO_MODE_KEY" env-default:"covenantops-demo-mode"`

	File     FileStoreConfig `yaml:"file"`
	SQLite   SQLiteConfig    `yaml:"sqlite"`
	Postgres DatabaseConfig  `yaml:"postgres"`
	S3       S3Config        `yaml:"s3"`
}

// FileStoreConfig holds settings for the directory-backed store.
type FileStoreConfig struct {
	Dir string `yaml:"dir" env:"STORE_FILE_DIR" env-default:"./data"`
}

// SQLiteConfig holds settings for the SQLite-backed store.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"STORE_SQLITE_PATH" env-default:"./data/covenantops.db"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// AutoMigrate defaults to true; see defaults().
	AutoMigrate bool `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE"`
}

// S3Config holds settings for the S3/MinIO-backed store.
type S3Config struct {
	Bucket          string `yaml:"bucket"            env:"STORE_S3_BUCKET"`
	Region          string `yaml:"region"            env:"STORE_S3_REGION"            env-default:"us-east-1"`
	Endpoint        string `yaml:"endpoint"          env:"STORE_S3_ENDPOINT"`
	PathStyle       bool   `yaml:"path_style"        env:"STORE_S3_PATH_STYLE"        env-default:"false"`
	Prefix          string `yaml:"prefix"            env:"STORE_S3_PREFIX"            env-default:"covenantops/"`
	AccessKeyID     string `yaml:"access_key_id"     env:"STORE_S3_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"STORE_S3_SECRET_ACCESS_KEY"`
}

// EngineConfig holds data engine behaviour switches.
type EngineConfig struct {
	// SeedOnFirstRun defaults to true in defaults().
	SeedOnFirstRun           bool   `yaml:"seed_on_first_run"          env:"ENGINE_SEED_ON_FIRST_RUN"`
	RandomSeed               uint64 `yaml:"random_seed"                env:"ENGINE_RANDOM_SEED"                env-default:"0"`
	StrictStatusTransitions  bool   `yaml:"strict_status_transitions"  env:"ENGINE_STRICT_STATUS_TRANSITIONS"  env-default:"false"`
	StrictEvidenceReferences bool   `yaml:"strict_evidence_references" env:"ENGINE_STRICT_EVIDENCE_REFERENCES" env-default:"false"`
	EvidencePathPrefix       string `yaml:"evidence_path_prefix"       env:"ENGINE_EVIDENCE_PATH_PREFIX"       env-default:"/demo/evidence/"`
}
