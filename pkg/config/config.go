// Package config loads the optional interop.yaml and applies it to the
// process-wide settings of the props and errors packages.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	interoperrors "github.com/go-drift/interop/pkg/errors"
	"github.com/go-drift/interop/pkg/props"
)

// FileName is the configuration file looked up in a project directory.
const FileName = "interop.yaml"

// TrustEnv overrides equivalence.trust_homogeneous_origin when set.
const TrustEnv = "INTEROP_TRUST_HOMOGENEOUS_ORIGIN"

// Log formats accepted in log.format.
const (
	FormatText = "text"
	FormatZap  = "zap"
)

// Config represents the optional interop.yaml configuration.
type Config struct {
	Equivalence EquivalenceConfig `yaml:"equivalence"`
	Log         LogConfig         `yaml:"log"`
}

// EquivalenceConfig contains props comparison settings.
type EquivalenceConfig struct {
	TrustHomogeneousOrigin bool `yaml:"trust_homogeneous_origin,omitempty"`
}

// LogConfig selects how interop diagnostics are reported.
type LogConfig struct {
	Format  string `yaml:"format,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
	Debug   bool   `yaml:"debug,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root                   string
	TrustHomogeneousOrigin bool
	LogFormat              string
	Verbose                bool
	Debug                  bool
}

// LoadOptional reads interop.yaml if present. Unknown keys are rejected.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads interop.yaml (if present), applies environment overrides
// and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	trust := cfg.Equivalence.TrustHomogeneousOrigin
	if raw, ok := os.LookupEnv(TrustEnv); ok && strings.TrimSpace(raw) != "" {
		trust, err = strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid %s=%q: %w", TrustEnv, raw, err)
		}
	}

	format := strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if format == "" {
		format = FormatText
	}
	if err := validateFormat(format); err != nil {
		return nil, err
	}

	return &Resolved{
		Root:                   dir,
		TrustHomogeneousOrigin: trust,
		LogFormat:              format,
		Verbose:                cfg.Log.Verbose,
		Debug:                  cfg.Log.Debug,
	}, nil
}

// Apply installs the resolved settings. Call it once at process start,
// before any props are compared.
func (r *Resolved) Apply() error {
	handler, err := r.handler()
	if err != nil {
		interoperrors.Report(&interoperrors.InteropError{
			Op:   "config.Apply",
			Kind: interoperrors.KindConfig,
			Err:  err,
		})
		return err
	}
	interoperrors.SetHandler(handler)
	props.SetTrustHomogeneousOrigin(r.TrustHomogeneousOrigin)
	return nil
}

func (r *Resolved) handler() (interoperrors.ErrorHandler, error) {
	switch r.LogFormat {
	case FormatZap:
		logger, err := interoperrors.NewProductionLogger(r.Debug)
		if err != nil {
			return nil, err
		}
		return interoperrors.NewZapHandler(logger, r.Verbose), nil
	default:
		return &interoperrors.LogHandler{Verbose: r.Verbose}, nil
	}
}

// FindProjectRoot walks up from the current directory to the nearest
// directory holding interop.yaml or go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s or go.mod found", FileName)
		}
		dir = parent
	}
}

func validateFormat(format string) error {
	switch format {
	case FormatText, FormatZap:
		return nil
	}
	return fmt.Errorf("log.format must be %q or %q (got %q)", FormatText, FormatZap, format)
}
