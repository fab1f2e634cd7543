package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOptions controls configuration resolution.
type LoadOptions struct {
	// WorkingDir is where project discovery starts. Defaults to the
	// current directory.
	WorkingDir string

	// ExplicitPath skips discovery and loads this file instead.
	ExplicitPath string

	// IgnoreEnv skips INFERUS_* overrides.
	IgnoreEnv bool

	// LookupEnv replaces os.LookupEnv, for tests.
	LookupEnv func(string) (string, bool)

	// Flags holds values set on the command line; they win over every
	// other source. Empty fields are ignored.
	Flags *Config
}

// LoadResult is the resolved configuration and where it came from.
type LoadResult struct {
	Config     *Config
	LoadedFrom string
	EnvApplied []string
}

// Load resolves the configuration. Precedence, highest first: flags,
// environment, config file, defaults.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	cfg := Default()
	result := &LoadResult{Config: cfg}

	path := opts.ExplicitPath
	if path == "" {
		found, err := FindProjectConfig(ctx, opts.WorkingDir)
		if err != nil {
			return nil, fmt.Errorf("discover config: %w", err)
		}
		path = found
	}

	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg.merge(fileCfg)
		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		result.EnvApplied = applyEnv(cfg, opts.LookupEnv)
	}

	cfg.merge(opts.Flags)

	if err := cfg.Validate(result.LoadedFrom); err != nil {
		return nil, err
	}
	return result, nil
}

// LoadFile reads a YAML config file. Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data. An empty document yields an empty Config.
// Malformed YAML and unknown keys are reported as ErrInvalidConfig.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode yaml: %w", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return data, nil
}
