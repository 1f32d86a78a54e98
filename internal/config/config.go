// SPDX-License-Identifier: MIT

// Package config loads the environment-driven settings of the command-line
// tools and validates the positional arguments of bipval.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment selects logging defaults.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Environment variables.
const (
	EnvEnvironment   = "BIPVAL_ENV"
	EnvLogLevel      = "BIPVAL_LOG_LEVEL"
	EnvLogFormat     = "BIPVAL_LOG_FORMAT"
	EnvSummary       = "BIPVAL_SUMMARY"
	EnvMetricsFile   = "BIPVAL_METRICS_FILE"
	EnvHubLimit      = "BIPVAL_HUB_LIMIT"
	EnvNameExtension = "BIPVAL_NAME_EXTENSION"

	DefaultNameExtension = "_validated"
)

// ErrInvalidConfig indicates an environment value that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// LoggingConfig drives internal/logging. Level holds the canonical names
// understood by logging.ParseLevel; "warning" is folded into "warn" on load.
type LoggingConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json console"`
}

// Config is the process configuration read from the environment.
type Config struct {
	Env     Environment
	Logging LoggingConfig

	// Summary enables the YAML run summary next to the output file.
	Summary bool

	// MetricsFile, when set, receives Prometheus textfile metrics.
	MetricsFile string

	// HubLimit bounds set-2 degree during projection; 0 disables the guard.
	HubLimit int `validate:"gte=0"`

	// NameExtension is used when the fifth argument is omitted.
	NameExtension string `validate:"required,excludesall=/"`
}

// Load reads an optional .env file and then the BIPVAL_* variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := parseEnvironment(getEnv(EnvEnvironment, string(Development)))
	summary, err := getEnvBool(EnvSummary, false)
	if err != nil {
		return nil, err
	}
	hubLimit, err := getEnvInt(EnvHubLimit, 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env: env,
		Logging: LoggingConfig{
			Level:  canonicalLevel(getEnv(EnvLogLevel, defaultLevel(env))),
			Format: strings.ToLower(getEnv(EnvLogFormat, defaultFormat(env))),
		},
		Summary:       summary,
		MetricsFile:   getEnv(EnvMetricsFile, ""),
		HubLimit:      hubLimit,
		NameExtension: getEnv(EnvNameExtension, DefaultNameExtension),
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, formatValidationError(err))
	}

	return cfg, nil
}

func parseEnvironment(s string) Environment {
	env := Environment(strings.ToLower(s))
	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

// canonicalLevel lower-cases a level name and folds the "warning" alias
// accepted by logging.ParseLevel into "warn".
func canonicalLevel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return "warn"
	}

	return s
}

func defaultLevel(env Environment) string {
	if env == Production {
		return "info"
	}

	return "debug"
}

func defaultFormat(env Environment) string {
	if env == Production {
		return "json"
	}

	return "console"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns defaultValue for an unset variable and ErrInvalidConfig
// for one that is set but not an integer.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, value)
	}
	return intValue, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, key, value)
	}
	return b, nil
}
