// Package logging builds the application's zap logger. The terminal belongs
// to the TUI, so output normally goes to a file.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/smartkids/internal/store"
)

// Stderr is the path that selects standard error instead of a file.
const Stderr = "-"

// Options configures New.
type Options struct {
	Level  string // debug, info, warn or error
	Format string // console or json
	Path   string // file path, or Stderr
}

// New creates a logger and a cleanup func that flushes and closes its output.
func New(opts Options) (*zap.Logger, func(), error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("parse log level: %w", err)
		}
		level = l
	}

	ws, closeOut, err := openOutput(opts.Path)
	if err != nil {
		return nil, nil, err
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if opts.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	logger := zap.New(zapcore.NewCore(encoder, ws, level),
		zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	cleanup := func() {
		_ = logger.Sync()
		closeOut()
	}
	return logger, cleanup, nil
}

func openOutput(path string) (zapcore.WriteSyncer, func(), error) {
	if path == "" || path == Stderr {
		return zapcore.Lock(os.Stderr), func() {}, nil
	}
	if err := store.EnsureDir(path); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return zapcore.Lock(f), func() { f.Close() }, nil
}
