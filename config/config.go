package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/genfactory/core/factory"
)

// EnvPrefix marks environment variables overriding file values.
// GF_LOGGING__LEVEL=debug sets logging.level.
const EnvPrefix = "GF_"

type Config struct {
	Logging   LoggingConfig          `json:"logging"`
	Metrics   MetricsConfig          `json:"metrics"`
	Tracing   TracingConfig          `json:"tracing"`
	Events    EventsConfig           `json:"events"`
	Observers []factory.ModuleConfig `json:"observers"`
	Sinks     []factory.ModuleConfig `json:"sinks"`
	Animals   []AnimalConfig         `json:"animals"`
}

// Load reads the configuration at path, applies environment overrides and
// defaults, then validates it. An empty path loads defaults and environment
// overrides only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies defaults to every section.
func (c *Config) SetDefaults() {
	c.Logging.SetDefaults()
	c.Events.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	for i, o := range c.Observers {
		if o.Type == "" {
			return fmt.Errorf("observers[%d]: type is required", i)
		}
	}
	for i, s := range c.Sinks {
		if s.Type == "" {
			return fmt.Errorf("sinks[%d]: type is required", i)
		}
	}
	for i, a := range c.Animals {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("animals[%d]: %w", i, err)
		}
	}
	return nil
}
