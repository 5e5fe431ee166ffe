// SPDX-License-Identifier: MIT
// Package config resolves the sparsecalc driver settings.
//
// Precedence (lowest to highest):
//   - built-in defaults (Default),
//   - an optional YAML file,
//   - SPARSECALC_* environment variables,
//   - command-line flags (applied by the CLI on top of Load's result).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sparsecalc/internal/logging"
	"github.com/katalvlaran/sparsecalc/matrix"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SPARSECALC_"

// Config holds the driver settings.
// Fields without an env/yaml value keep whatever the lower layer set.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	// OutputDir is joined with the default output name (matrix_<op>.txt)
	// when no explicit output path is given. Empty means the working directory.
	OutputDir string `yaml:"output_dir" env:"OUTPUT_DIR"`

	// ShapePolicy is "declared" or "bounding-box" (see matrix.ShapePolicy).
	ShapePolicy string `yaml:"shape_policy" env:"SHAPE_POLICY"`

	// RejectDuplicates turns repeated coordinates into a parse error.
	RejectDuplicates bool `yaml:"reject_duplicates" env:"REJECT_DUPLICATES"`

	// LegacyColumnHeader writes cols-1 in output headers and reads declared
	// headers back as cols+1.
	LegacyColumnHeader bool `yaml:"legacy_column_header" env:"LEGACY_COLUMN_HEADER"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:    logging.LevelNameInfo,
		ShapePolicy: matrix.ShapeDeclared.String(),
	}
}

// Load resolves defaults, then the YAML file at path (skipped when path is
// empty), then the process environment.
func Load(path string) (Config, error) {
	return LoadWith(path, nil)
}

// LoadWith is Load with an explicit environment; nil means os.Environ.
func LoadWith(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// mergeFile overlays the YAML document at path onto cfg.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	if _, err := matrix.ParseShapePolicy(c.ShapePolicy); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// MatrixOptions translates the codec settings into matrix options.
func (c Config) MatrixOptions() ([]matrix.Option, error) {
	policy, err := matrix.ParseShapePolicy(c.ShapePolicy)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	opts := []matrix.Option{matrix.WithShapePolicy(policy)}
	if c.RejectDuplicates {
		opts = append(opts, matrix.WithRejectDuplicates())
	}
	if c.LegacyColumnHeader {
		opts = append(opts, matrix.WithLegacyColumnHeader())
	}

	return opts, nil
}
