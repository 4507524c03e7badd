// Package config holds the process-level settings of the fmatrix commands.
// Values come from FMATRIX_* environment variables first; command-line flags
// applied afterwards override them.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds everything a solver run needs beyond the equations themselves.
type Config struct {
	LogLevel  string `env:"FMATRIX_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FMATRIX_LOG_FORMAT" envDefault:"text"`

	// Precision is the number of decimals shown in rendered tables.
	Precision int `env:"FMATRIX_PRECISION" envDefault:"3"`

	PivotTolerance  float64 `env:"FMATRIX_PIVOT_TOLERANCE" envDefault:"0"`
	VerifyTolerance float64 `env:"FMATRIX_VERIFY_TOLERANCE" envDefault:"1e-9"`
	Strict          bool    `env:"FMATRIX_STRICT" envDefault:"false"`
	Reduced         bool    `env:"FMATRIX_REDUCED" envDefault:"false"`

	// File and System select an HCL source instead of interactive input.
	File   string `env:"FMATRIX_FILE"`
	System string `env:"FMATRIX_SYSTEM"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns a Config populated from the environment and validated.
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalizes the enumerations to lower case and checks ranges.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.New("invalid log-format: must be 'text' or 'json'")
	}

	if c.PivotTolerance < 0 {
		return errors.New("invalid pivot-tolerance: must be >= 0")
	}
	if c.VerifyTolerance <= 0 {
		return errors.New("invalid verify-tolerance: must be > 0")
	}
	if c.System != "" && c.File == "" {
		return errors.New("system requires file")
	}

	return nil
}
