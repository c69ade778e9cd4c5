// Package logging builds the application's zap logger. The TUI owns the
// terminal, so log output goes to a file.
package logging

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/paomind/internal/config"
)

// FileName is the log file created next to the database by default.
const FileName = "paomind.log"

// New returns a JSON file logger at the configured level. When cfg.File is
// empty the log is written beside dbPath.
func New(cfg config.Log, dbPath string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	path := cfg.File
	if path == "" {
		path = filepath.Join(filepath.Dir(dbPath), FileName)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	zc.Sampling = nil

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("app", "paomind")), nil
}
