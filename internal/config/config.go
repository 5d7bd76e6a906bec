// Package config loads slidecraft runtime configuration from environment
// variables, .env files, and CLI flags bound through viper.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"slidecraft/internal/logger"
)

// Config holds runtime settings for the decision engine and its advisor.
type Config struct {
	// AdvisorProvider selects the advice backend: "openai", "anthropic",
	// "huggingface", or "mock".
	AdvisorProvider string `mapstructure:"advisor-provider"`

	// AdvisorBaseURL overrides the endpoint for OpenAI-compatible providers.
	AdvisorBaseURL string `mapstructure:"advisor-base-url"`

	// AdvisorModel names the model for advice calls.
	AdvisorModel string `mapstructure:"advisor-model"`

	// MockMode forces the deterministic advisor regardless of provider.
	MockMode bool `mapstructure:"mock"`

	LogLevel string `mapstructure:"log-level"`
	LogFile  string `mapstructure:"log-file"`
}

// Load builds a Config with precedence: CLI flags (already bound into viper)
// > environment variables > .env file > defaults. A missing .env file is not
// an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.Debug("Skipping .env file", "error", err)
		}
	}

	viper.SetEnvPrefix("SLIDECRAFT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("advisor-provider", "mock")
	viper.SetDefault("advisor-model", "")
	viper.SetDefault("advisor-base-url", "")
	viper.SetDefault("mock", false)
	viper.SetDefault("log-level", "")
	viper.SetDefault("log-file", "")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.MockMode {
		cfg.AdvisorProvider = "mock"
	}

	return &cfg, nil
}
