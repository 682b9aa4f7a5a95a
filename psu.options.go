package psu

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	outputDir string
	strict    bool
	logger    *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		outputDir: DefaultOutputDir,
		strict:    false,
		logger:    nil,
	}
}

// WithLogger sets the logger for the engine.
// Default: no logging
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithOutputDir sets the directory CompileFile writes artifacts into.
// Default: "."
func WithOutputDir(dir string) Option {
	return func(c *engineConfig) {
		if dir != "" {
			c.outputDir = dir
		}
	}
}

// WithStrict promotes warnings to errors in Check results.
// Compile semantics are unchanged.
// Default: false
func WithStrict(strict bool) Option {
	return func(c *engineConfig) {
		c.strict = strict
	}
}
