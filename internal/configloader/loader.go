// Package configloader resolves the jlpp configuration from defaults, config
// files, the environment and command-line flags.
package configloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ftomassetti/javaparser/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is a config file path from the --config flag.
	// It is merged over the project config.
	ExplicitPath string

	// IgnoreUserConfig skips $XDG_CONFIG_HOME/jlpp/config.yaml.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips the upward search for .jlpp.yml.
	IgnoreProjectConfig bool

	// IgnoreEnv skips JLPP_* environment variables.
	IgnoreEnv bool

	// LookupEnv reads environment variables. Defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)

	// Flags holds the settings given on the command line. They take
	// precedence over everything else.
	Flags *Overrides
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were loaded, lowest precedence first.
	LoadedFrom []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.Flags)
//  2. Environment variables (JLPP_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.jlpp.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/jlpp/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	files := []struct {
		path string
		skip bool
		what string
	}{
		{paths.User, opts.IgnoreUserConfig, "user"},
		{paths.Project, opts.IgnoreProjectConfig, "project"},
		{paths.Explicit, false, "explicit"},
	}
	for _, file := range files {
		if file.skip || file.path == "" {
			continue
		}
		overrides, err := loadConfigFile(file.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", file.what, err)
		}
		if err := ValidateFile(overrides, file.path); err != nil {
			return nil, err
		}
		cfg = overrides.Apply(cfg)
		result.LoadedFrom = append(result.LoadedFrom, file.path)
	}

	if !opts.IgnoreEnv {
		lookup := opts.LookupEnv
		if lookup == nil {
			lookup = os.LookupEnv
		}
		env, err := FromEnv(lookup)
		if err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
		cfg = env.Apply(cfg)
	}

	cfg = opts.Flags.Apply(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile reads the settings a YAML file sets. Unknown keys are an
// error.
func loadConfigFile(path string) (*Overrides, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	overrides := &Overrides{}
	if err := decoder.Decode(overrides); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return overrides, nil
}
