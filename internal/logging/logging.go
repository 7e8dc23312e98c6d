// Package logging builds the process logger.
//
// The TUI owns the terminal, so nothing may be written to stdout or stderr
// while it runs. Logs go to a file, or nowhere when no file is configured.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a JSON file logger at the given level, or a no-op logger
// when path is empty.
func New(path, level string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
