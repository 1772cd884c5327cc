package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "config.yaml", `logging:
  level: debug
  format: console
metrics:
  address: ":9100"
tracing:
  enabled: true
observers:
  - type: log
  - type: prometheus
sinks:
  - type: mqtt
    conf:
      broker: "tcp://localhost:1883"
      topic: "zoo/lifecycle"
animals:
  - key: rex
    type: dog
    conf:
      name: Rex
  - key: tom
    type: cat
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"logging.level", cfg.Logging.Level, "debug"},
		{"logging.format", cfg.Logging.Format, "console"},
		{"metrics.address", cfg.Metrics.Address, ":9100"},
		{"tracing.enabled", cfg.Tracing.Enabled, true},
		{"events.buffer", cfg.Events.Buffer, 64},
		{"observers", len(cfg.Observers), 2},
		{"observers[1]", cfg.Observers[1].Type, "prometheus"},
		{"sinks[0].type", cfg.Sinks[0].Type, "mqtt"},
		{"sinks[0].topic", cfg.Sinks[0].Conf["topic"], "zoo/lifecycle"},
		{"animals", len(cfg.Animals), 2},
		{"animals[0].key", cfg.Animals[0].Key, "rex"},
		{"animals[0].name", cfg.Animals[0].Conf["name"], "Rex"},
		{"animals[1].type", cfg.Animals[1].Type, "cat"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoad_JSONAndEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.json", `{"logging":{"level":"warn"},"events":{"buffer":8}}`)
	t.Setenv("GF_LOGGING__LEVEL", "error")
	t.Setenv("GF_METRICS__ADDRESS", ":9200")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, ":9200", cfg.Metrics.Address)
	assert.Equal(t, 8, cfg.Events.Buffer)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 64, cfg.Events.Buffer)
	assert.Empty(t, cfg.Animals)
	assert.Empty(t, cfg.Metrics.Address)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"unsupported extension", "config.toml", "a = 1"},
		{"bad log format", "config.yaml", "logging:\n  format: xml\n"},
		{"animal without key", "config.yaml", "animals:\n  - type: dog\n"},
		{"animal without type", "config.yaml", "animals:\n  - key: rex\n"},
		{"observer without type", "config.yaml", "observers:\n  - conf: {}\n"},
		{"sink without type", "config.yaml", "sinks:\n  - conf: {}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.data))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
