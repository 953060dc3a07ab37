// Package config loads the importer configuration from the environment
package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/rpg-importer/internal/errors"
)

// Store backends for import results
const (
	StoreNone   = "none"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config holds all configuration for the importer
type Config struct {
	// Store selects where import results are kept
	Store      string        `env:"DDB_STORE" envDefault:"none"`
	RedisAddr  string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisTLS   bool          `env:"REDIS_TLS"`
	SQLitePath string        `env:"DDB_SQLITE_PATH" envDefault:"imports.db"`
	ImportTTL  time.Duration `env:"DDB_IMPORT_TTL" envDefault:"24h"`

	PreferSnippet     bool   `env:"DDB_PREFER_SNIPPET"`
	BackgroundEffects string `env:"DDB_BACKGROUND_EFFECTS" envDefault:"all"`

	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT"`

	GRPCPort    int `env:"GRPC_PORT" envDefault:"50051"`
	Concurrency int `env:"DDB_CONCURRENCY" envDefault:"4"`

	// OTelEndpoint enables tracing when set, e.g. http://localhost:4318
	OTelEndpoint string `env:"DDB_OTEL_ENDPOINT"`
}

// Load reads an optional .env file and parses the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load .env file")
	}
	return Parse()
}

// Parse parses the environment without reading any file
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that cannot be expressed as struct tags
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	switch c.Store {
	case StoreNone, StoreRedis, StoreSQLite:
	default:
		vb.InvalidField("Store", c.Store)
	}
	if c.Store == StoreRedis {
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	}
	if c.Store == StoreSQLite {
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}
	if c.ImportTTL < 0 {
		vb.InvalidField("ImportTTL", "cannot be negative")
	}
	switch c.BackgroundEffects {
	case "all", "last":
	default:
		vb.InvalidField("BackgroundEffects", c.BackgroundEffects)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		vb.InvalidField("LogLevel", c.LogLevel)
	}
	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("Concurrency", c.Concurrency, 1, 64, vb)

	return vb.Build()
}

// NewLogger builds the zap logger described by the config
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid log level %q", c.LogLevel)
	}

	zc := zap.NewProductionConfig()
	if c.LogDevelopment {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	// stdout carries parse output
	zc.OutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return logger, nil
}
