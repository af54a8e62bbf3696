package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(nil)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Store)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "smartkids:", cfg.RedisPrefix)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, time.Second, cfg.FeedbackDelay)
	assert.Empty(t, cfg.DataDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"SMARTKIDS_STORE":          " Redis ",
		"SMARTKIDS_REDIS_ADDR":     "cache:6380",
		"SMARTKIDS_REDIS_DB":       "3",
		"SMARTKIDS_LOG_LEVEL":      "debug",
		"SMARTKIDS_LOG_FORMAT":     "json",
		"SMARTKIDS_FEEDBACK_DELAY": "250ms",
		"SMARTKIDS_DATA_DIR":       "/tmp/sk",
		"STORE":                    "memory",
	})
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Store, "unprefixed keys are ignored")
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 250*time.Millisecond, cfg.FeedbackDelay)
	assert.Equal(t, "/tmp/sk", cfg.DataDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFrom_ParseError(t *testing.T) {
	_, err := LoadFrom(map[string]string{"SMARTKIDS_REDIS_DB": "not-an-int"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoad_ReadsProcessEnv(t *testing.T) {
	t.Setenv("SMARTKIDS_STORE", "file")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Store)
}

func TestValidate(t *testing.T) {
	valid, err := LoadFrom(nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown store", func(c *Config) { c.Store = "postgres" }, `unknown store "postgres"`},
		{"redis without addr", func(c *Config) { c.Store = BackendRedis; c.RedisAddr = "" }, "redis store needs an address"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, `invalid log level "loud"`},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, `invalid log format "xml"`},
		{"zero delay", func(c *Config) { c.FeedbackDelay = 0 }, "feedback delay must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Config{Store: "nope", LogLevel: "loud", LogFormat: "xml"}
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"unknown store", "invalid log level", "invalid log format", "feedback delay"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestResolvePaths(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{DataDir: dir}

	db, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "smartkids.db"), db)

	logPath, err := cfg.ResolveLogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "smartkids.log"), logPath)

	scores, err := cfg.ResolveFileStoreDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "scores"), scores)

	cfg.DBPath = filepath.Join(dir, "nested", "custom.db")
	cfg.LogFile = "-"
	db, err = cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, cfg.DBPath, db)
	assert.DirExists(t, filepath.Join(dir, "nested"))

	logPath, err = cfg.ResolveLogPath()
	require.NoError(t, err)
	assert.Equal(t, "-", logPath)
}

func TestResolveDataDir_XDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	got, err := Config{}.ResolveDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "smartkids"), got)
}
