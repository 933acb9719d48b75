// File: internal/config/config_test.go
package config

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Constructor and Defaults Tests --

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	// Verify a few key defaults to ensure the mechanism works.
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "agentsmith", cfg.Logger.ServiceName)
	assert.Empty(t, cfg.Logger.LogFile)
	assert.Equal(t, "user_agents.json", cfg.Generator.CatalogPath)
	assert.Equal(t, 1, cfg.Generator.Count)
	assert.Equal(t, int64(0), cfg.Generator.Seed)
}

// -- Validation Logic Tests --

func TestConfigValidation(t *testing.T) {
	// Start with a valid default config.
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())

	t.Run("invalid logger format", func(t *testing.T) {
		bad := *cfg
		bad.Logger.Format = "xml"
		err := bad.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logger.format")
	})

	t.Run("empty catalog path", func(t *testing.T) {
		bad := *cfg
		bad.Generator.CatalogPath = ""
		err := bad.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "generator.catalog_path must not be empty")
	})

	t.Run("non-positive count", func(t *testing.T) {
		bad := *cfg
		bad.Generator.Count = 0
		err := bad.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "generator.count must be a positive integer")
	})
}

// -- Viper Integration Tests --

func TestNewConfigFromViper(t *testing.T) {
	t.Run("config file overrides defaults", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.SetConfigType("yaml")

		yamlConfig := []byte(`
logger:
  level: debug
  format: json
generator:
  catalog_path: /etc/agentsmith/catalog.json
  count: 5
  seed: 42
`)
		require.NoError(t, v.ReadConfig(bytes.NewBuffer(yamlConfig)))

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logger.Level)
		assert.Equal(t, "json", cfg.Logger.Format)
		assert.Equal(t, "/etc/agentsmith/catalog.json", cfg.Generator.CatalogPath)
		assert.Equal(t, 5, cfg.Generator.Count)
		assert.Equal(t, int64(42), cfg.Generator.Seed)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("generator.count", -3)

		_, err := NewConfigFromViper(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "generator.count")
	})
}
