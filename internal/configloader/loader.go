// Package configloader resolves the final mdindex configuration from
// defaults, a project config file, environment variables, and CLI flags.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdindex/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for a project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (MDINDEX_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.mdindex.yml upward search)
//  5. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	if opts.ExplicitPath != "" {
		explicitCfg, err := loadConfigFile(opts.ExplicitPath)
		if err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		cfg = merge(cfg, explicitCfg)
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	} else {
		projectPath, err := FindProjectConfig(ctx, workDir)
		if err != nil {
			return nil, fmt.Errorf("discover project config: %w", err)
		}
		if projectPath != "" {
			projectCfg, err := loadConfigFile(projectPath)
			if err != nil {
				return nil, fmt.Errorf("load project config: %w", err)
			}
			cfg = merge(cfg, projectCfg)
			result.LoadedFrom = append(result.LoadedFrom, projectPath)
		}
	}

	if !opts.IgnoreEnv {
		LoadFromEnv(cfg)
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg := &config.Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return cfg, nil
}

// validate rejects configurations the rest of the program cannot honor.
func validate(cfg *config.Config) error {
	if !cfg.TitleMode.IsValid() {
		return fmt.Errorf("invalid title_mode %q (expected %q or %q)",
			cfg.TitleMode, config.TitleModeFilename, config.TitleModeHeading)
	}
	return nil
}
