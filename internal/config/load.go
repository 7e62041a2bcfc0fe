package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the
// PORTFOLIO_ prefix with underscores for nesting (e.g. PORTFOLIO_AUTH_JWT_SECRET)
// and take precedence over file values.
//
// Returns a populated Config or an error when a required setting is missing
// or invalid; the caller is expected to treat that error as fatal.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_origins", []string{"http://localhost:5173"})
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("database.name", "PortfolioZ")

	// Viper only resolves environment variables for keys it knows about, so
	// required settings without a sensible default are registered empty here
	// and caught by validation below when truly absent.
	v.SetDefault("database.uri", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("icon.api_key", "")
	v.SetDefault("publish.base_url", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A config file is optional; environment variables alone are enough.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
