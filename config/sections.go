package config

import (
	"fmt"
	"strings"
)

// LoggingConfig defines the process wide log settings.
type LoggingConfig struct {
	// Level is a zerolog level name such as "debug" or "info".
	Level string `json:"level"`
	// Format is "json" or "console". Empty lets APP_ENV decide.
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the format name.
func (c LoggingConfig) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", "json", "console":
		return nil
	default:
		return fmt.Errorf("unknown format %s", c.Format)
	}
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	// Address is the listen address of the /metrics server; empty disables it.
	Address string `json:"address"`
}

// TracingConfig toggles OpenTelemetry spans around creator invocations.
type TracingConfig struct {
	Enabled bool `json:"enabled"`
}

// EventsConfig sizes the lifecycle event bus feeding the sinks.
type EventsConfig struct {
	Buffer int `json:"buffer"`
}

func (c *EventsConfig) SetDefaults() {
	if c.Buffer <= 0 {
		c.Buffer = 64
	}
}

// AnimalConfig registers one creator under Key, built by the Type builder.
type AnimalConfig struct {
	Key  string         `json:"key"`
	Type string         `json:"type"`
	Conf map[string]any `json:"conf"`
}

func (c AnimalConfig) Validate() error {
	if c.Key == "" {
		return fmt.Errorf("key is required")
	}
	if c.Type == "" {
		return fmt.Errorf("type is required for %s", c.Key)
	}
	return nil
}
