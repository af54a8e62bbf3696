package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/smartkids/internal/config"
	"github.com/abhisek/smartkids/internal/highscore"
	"github.com/abhisek/smartkids/internal/logging"
	"github.com/abhisek/smartkids/internal/store"
)

const redisPingTimeout = 2 * time.Second

// env bundles what the data commands need.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	scores *highscore.Store
	close  func()
}

// openEnv loads config, starts logging and opens the high score backend.
// Callers must call close.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logPath, err := cfg.ResolveLogPath()
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Path:   logPath,
	})
	if err != nil {
		return nil, fmt.Errorf("start logging: %w", err)
	}

	kv, closeKV, err := openBackend(cmd.Context(), cfg, logger)
	if err != nil {
		closeLog()
		return nil, err
	}
	logger.Debug("backend opened", zap.String("store", cfg.Store))

	return &env{
		cfg:    cfg,
		logger: logger,
		scores: highscore.NewStore(kv, logger),
		close: func() {
			if err := closeKV(); err != nil {
				logger.Warn("failed to close backend", zap.Error(err))
			}
			closeLog()
		},
	}, nil
}

// openBackend opens the KV store selected by cfg.Store. An unreachable Redis
// is logged, not fatal: loads then come back empty.
func openBackend(ctx context.Context, cfg config.Config, logger *zap.Logger) (store.KV, func() error, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	switch cfg.Store {
	case config.BackendSQLite:
		dbPath, err := cfg.ResolveDBPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return st.KV(), st.Close, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis unreachable, high scores may not persist",
				zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		return store.NewRedisKV(client, cfg.RedisPrefix), client.Close, nil

	case config.BackendFile:
		dir, err := cfg.ResolveFileStoreDir()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve data dir: %w", err)
		}
		kv, err := store.NewFileKV(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("open file store: %w", err)
		}
		return kv, func() error { return nil }, nil

	case config.BackendMemory:
		return store.NewMemoryKV(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
