package app

import (
	"errors"
	"fmt"

	"github.com/vk/targetplan/internal/toolchain"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	TargetPaths []string // target descriptor files or directories
	ModulesPath string   // module manifests

	OutDir    string // empty streams manifests to the app's output writer
	OutFormat string // json or yaml

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.TargetPaths) == 0 {
		return nil, errors.New("TargetPaths is a required configuration field and cannot be empty")
	}
	for i, p := range cfg.TargetPaths {
		if p == "" {
			return nil, fmt.Errorf("TargetPaths[%d] is empty", i)
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.OutFormat == "" {
		cfg.OutFormat = string(toolchain.FormatJSON)
	}
	if _, err := toolchain.ParseFormat(cfg.OutFormat); err != nil {
		return nil, err
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WorkerCount must be at least 1, got %d", cfg.WorkerCount)
	}
	cfg.TargetPaths = append([]string(nil), cfg.TargetPaths...)
	return &cfg, nil
}

// paths returns every path the loaders should read.
func (c *Config) paths() []string {
	paths := append([]string(nil), c.TargetPaths...)
	if c.ModulesPath != "" {
		paths = append(paths, c.ModulesPath)
	}
	return paths
}
