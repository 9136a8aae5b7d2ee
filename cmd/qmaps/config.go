// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qmaps/qobj"
	"github.com/katalvlaran/qmaps/superop"
)

// Environment variables read after .env is loaded.
const (
	envConfig   = "QMAPS_CONFIG"
	envLogLevel = "QMAPS_LOG_LEVEL"
)

var errInvalidSettings = errors.New("qmaps: invalid settings")

// Settings is the optional YAML settings file.
type Settings struct {
	// Tidyup toggles the auto-tidy pass on composite results.
	Tidyup bool `yaml:"tidyup"`

	// TidyupAtol is the absolute cutoff of the auto-tidy pass.
	TidyupAtol float64 `yaml:"tidyup_atol"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// CPCheck makes Kraus extraction reject non-CP maps.
	CPCheck bool `yaml:"cp_check"`

	// CPEpsilon is the tolerance of the CP check.
	CPEpsilon float64 `yaml:"cp_epsilon"`
}

// DefaultSettings mirrors the library defaults.
func DefaultSettings() Settings {
	return Settings{
		Tidyup:     qobj.DefaultAutoTidyup,
		TidyupAtol: qobj.DefaultAutoTidyupAtol,
		LogLevel:   zerolog.LevelInfoValue,
		CPCheck:    superop.DefaultCPCheck,
		CPEpsilon:  superop.DefaultCPEpsilon,
	}
}

// LoadSettings reads path on top of the defaults. An empty path falls back to
// $QMAPS_CONFIG; when both are empty the defaults are returned. A log level in
// $QMAPS_LOG_LEVEL overrides the file.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("reading settings: %w", err)
		}
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return s, fmt.Errorf("parsing settings %s: %w", path, err)
		}
	}
	if lvl := os.Getenv(envLogLevel); lvl != "" {
		s.LogLevel = lvl
	}

	return s, s.Validate()
}

// Validate rejects tolerances the library would panic on and unknown levels.
func (s Settings) Validate() error {
	if s.TidyupAtol < 0 || math.IsNaN(s.TidyupAtol) || math.IsInf(s.TidyupAtol, 0) {
		return fmt.Errorf("tidyup_atol %g: %w", s.TidyupAtol, errInvalidSettings)
	}
	if s.CPEpsilon < 0 || math.IsNaN(s.CPEpsilon) || math.IsInf(s.CPEpsilon, 0) {
		return fmt.Errorf("cp_epsilon %g: %w", s.CPEpsilon, errInvalidSettings)
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", s.LogLevel, errInvalidSettings)
	}

	return nil
}

// Apply installs the process-wide tidy-up policy.
func (s Settings) Apply() {
	qobj.SetAutoTidyup(s.Tidyup)
	qobj.SetAutoTidyupAtol(s.TidyupAtol)
}

// ConversionOptions returns the superop options implied by the settings.
func (s Settings) ConversionOptions(log zerolog.Logger) []superop.Option {
	opts := []superop.Option{superop.WithLogger(log)}
	if s.CPCheck {
		opts = append(opts, superop.WithCPCheck(s.CPEpsilon))
	}

	return opts
}
