// Package configloader resolves the effective configuration: explicit
// path or project discovery, then environment overrides, then validation.
package configloader

import (
	"fmt"
	"os"

	"github.com/yaklabco/gohighlight/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final configuration.
	Config *config.Config

	// LoadedFrom is the file the configuration came from; empty when the
	// defaults were used.
	LoadedFrom string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration. Precedence (highest to lowest):
//  1. Environment variables (GOHIGHLIGHT_*)
//  2. Explicit config file, or a discovered project config
//  3. Built-in defaults
func Load(opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Config: config.Default()}

	path := opts.ExplicitPath
	if path == "" {
		dir := opts.WorkingDir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("working directory: %w", err)
			}
			dir = wd
		}
		path = Discover(dir)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		cfg, err := config.FromYAML(data)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		result.Config = cfg
		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		result.Warnings = append(result.Warnings, applyEnv(result.Config)...)
	}

	if err := result.Config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return result, nil
}
