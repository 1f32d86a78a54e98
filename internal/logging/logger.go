// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the command-line tools.
// Library packages never log; they return errors and statistics.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bipval/internal/config"
)

// New builds a zap.Logger for cfg. Production defaults to JSON and
// development to a console encoder; Logging.Format overrides either.
// Logs go to stderr so stdout stays free for data.
func New(env config.Environment, cfg config.LoggingConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if env == config.Production {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		zapConfig.Encoding = "json"
	case "console":
		zapConfig.Encoding = "console"
	}
	zapConfig.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	return zapConfig.Build()
}

// ParseLevel maps a level name to a zapcore.Level; unknown names are info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
