// SPDX-License-Identifier: MIT

// Package config loads decodoku settings: defaults, then an optional YAML
// file, then DECODOKU_* environment variables, then validation. Command-line
// flags are applied by the caller after Load.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/decodoku/codes"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DECODOKU_"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full runtime configuration of the decodoku binary.
type Config struct {
	Code        string `yaml:"code" env:"CODE" validate:"required,family"`
	Size        int    `yaml:"size" env:"SIZE" validate:"gte=0,lte=16"`
	Base        int    `yaml:"base" env:"BASE" validate:"gte=0,lte=97"`
	Seed        int64  `yaml:"seed" env:"SEED"`
	Rounds      int    `yaml:"rounds" env:"ROUNDS" validate:"gte=1,lte=10000"`
	Errors      int    `yaml:"errors" env:"ERRORS" validate:"gte=1,lte=8"`
	DBPath      string `yaml:"db_path" env:"DB_PATH"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	NoColor     bool   `yaml:"no_color" env:"NO_COLOR"`
	MetricsAddr string `yaml:"metrics_addr" env:"METRICS_ADDR" validate:"omitempty,hostname_port"`
}

// Default returns the built-in configuration: the Steane code, five
// single-error rounds, no persistence and info logging.
func Default() Config {
	return Config{
		Code:     "steane",
		Rounds:   5,
		Errors:   1,
		LogLevel: "info",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field ranges and that Code names a known family.
func (c *Config) Validate() error {
	c.Code = strings.ToLower(strings.TrimSpace(c.Code))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if err := newValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("%s fails %q (value %v): %w", f.Field(), f.Tag(), f.Value(), ErrInvalidConfig)
		}
		return fmt.Errorf("validate: %v: %w", err, ErrInvalidConfig)
	}

	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("family", func(fl validator.FieldLevel) bool {
		_, err := codes.Lookup(fl.Field().String())
		return err == nil
	})

	return v
}
