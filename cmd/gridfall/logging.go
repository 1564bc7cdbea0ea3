package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the run logger. Without --debug the logger is a
// no-op so the terminal UI stays the only output; with it, debug
// records go to the configured log file (stdout is owned by tcell).
func newLogger(debug bool, path string) (*zap.Logger, error) {
	if !debug || path == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
