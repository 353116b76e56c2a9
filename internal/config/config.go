package config

import (
	"fmt"
	"strings"
)

// Supported output formats for the transform command.
var validFormats = []string{"text", "json", "yaml"}

// Valid log levels.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the default configuration for flatten.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Estimator: EstimatorConfig{
			Normalize: false,
		},
		Output: OutputConfig{
			Format:    "text",
			File:      "",
			Precision: 6,
		},
		Preview: PreviewConfig{
			Width:       800,
			Height:      800,
			GridSteps:   8,
			SourceColor: "#FF0000",
			DestColor:   "#00FF00",
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			CORSOrigin:      "*",
			TimeoutSec:      30,
			ShutdownTimeout: 10,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log_level %q (must be one of %s)",
			c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if !contains(validFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format %q (must be one of %s)",
			c.Output.Format, strings.Join(validFormats, ", "))
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return fmt.Errorf("invalid output precision %d (must be between 0 and 17)", c.Output.Precision)
	}
	if c.Preview.Width < 1 || c.Preview.Height < 1 {
		return fmt.Errorf("invalid preview size %dx%d", c.Preview.Width, c.Preview.Height)
	}
	if c.Preview.GridSteps < 0 {
		return fmt.Errorf("invalid preview grid_steps %d", c.Preview.GridSteps)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d (must be between 1 and 65535)", c.Server.Port)
	}
	if c.Server.TimeoutSec < 1 {
		return fmt.Errorf("invalid server timeout %d", c.Server.TimeoutSec)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("invalid server shutdown timeout %d", c.Server.ShutdownTimeout)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
