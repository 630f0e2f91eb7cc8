// Package logging wraps zap for the CLI layer. The battle engine itself
// never logs; it returns narrative lines on the action result. This logger
// is for command and fetcher diagnostics.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop().Sugar()

// Init builds the process logger. Verbose switches to debug level with
// development formatting.
func Init(verbose bool) error {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l.Sugar()
	return nil
}

// L returns the process logger.
func L() *zap.SugaredLogger { return logger }

// Sync flushes buffered entries; safe to call on shutdown.
func Sync() {
	_ = logger.Sync()
}
