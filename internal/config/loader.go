// Package config provides configuration management for the matchtips application.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. MATCHTIPS_SCORING_VARIANT
const EnvPrefix = "MATCHTIPS"

// DefaultConfigPath is used when no path is given
const DefaultConfigPath = "config/config.yaml"

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	// Set environment variable prefix
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "matchtips")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("scoring.variant", "basic")
	v.SetDefault("scoring.weight_attack", 0.6)
	v.SetDefault("scoring.weight_defense", 0.4)
	v.SetDefault("scoring.top_n", 6)
	v.SetDefault("scoring.chart_policy", "top")
	v.SetDefault("render.width", 0)
	v.SetDefault("render.show_explanations", true)
	v.SetDefault("render.show_chart", true)
	v.SetDefault("render.show_summary", true)
	v.SetDefault("metrics.enabled", true)
	return v
}

// Load reads configuration with defaults, an optional YAML file and environment variables.
// A missing file is not an error unless the path was given explicitly.
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath
	}

	v := newViper()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err) && !explicit:
		// continue with defaults and environment variables
	case os.IsNotExist(err):
		return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}
