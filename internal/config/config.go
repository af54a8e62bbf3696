// Package config loads runtime settings from SMARTKIDS_* environment
// variables. Command-line flags are applied on top by the cmd package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/smartkids/internal/store"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "SMARTKIDS_"

// Storage backends accepted by Config.Store.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Backends lists the valid storage backends.
var Backends = []string{BackendSQLite, BackendRedis, BackendFile, BackendMemory}

// Config holds all runtime settings.
type Config struct {
	// Store selects the high-score backend.
	Store string `env:"STORE" envDefault:"sqlite"`

	// DataDir holds the database, file store and log. Empty means the XDG
	// data directory.
	DataDir string `env:"DATA_DIR"`

	// DBPath overrides <DataDir>/smartkids.db.
	DBPath string `env:"DB"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"smartkids:"`

	// LogFile is "-" for stderr. Empty means <DataDir>/smartkids.log.
	LogFile   string `env:"LOG_FILE"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	FeedbackDelay time.Duration `env:"FEEDBACK_DELAY" envDefault:"1s"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(Environ())
}

// LoadFrom parses the given environment instead of the process one.
func LoadFrom(environ map[string]string) (Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return parse(environ)
}

func parse(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	return cfg, nil
}

// Validate checks that settings are usable.
func (c Config) Validate() error {
	var errs []string

	if !slices.Contains(Backends, c.Store) {
		errs = append(errs, fmt.Sprintf("unknown store %q (want one of %s)", c.Store, strings.Join(Backends, ", ")))
	}
	if c.Store == BackendRedis && c.RedisAddr == "" {
		errs = append(errs, "redis store needs an address")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("invalid log level %q", c.LogLevel))
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		errs = append(errs, fmt.Sprintf("invalid log format %q (want console or json)", c.LogFormat))
	}
	if c.FeedbackDelay <= 0 {
		errs = append(errs, fmt.Sprintf("feedback delay must be positive, got %s", c.FeedbackDelay))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// ResolveDataDir returns DataDir, or the default data directory.
func (c Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	return store.DefaultDataDir()
}

// ResolveDBPath returns the SQLite path and makes sure its directory exists.
func (c Config) ResolveDBPath() (string, error) {
	p := c.DBPath
	if p == "" {
		dir, err := c.ResolveDataDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(dir, "smartkids.db")
	}
	if err := store.EnsureDir(p); err != nil {
		return "", fmt.Errorf("create database dir: %w", err)
	}
	return p, nil
}

// ResolveLogPath returns the log destination; "-" means stderr.
func (c Config) ResolveLogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	dir, err := c.ResolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "smartkids.log"), nil
}

// ResolveFileStoreDir returns the directory used by the file backend.
func (c Config) ResolveFileStoreDir() (string, error) {
	dir, err := c.ResolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "scores"), nil
}

// Environ returns the SMARTKIDS_* variables of the process environment.
func Environ() map[string]string {
	out := map[string]string{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			out[k] = v
		}
	}
	return out
}
