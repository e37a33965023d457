package config

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if !isKnownEnvironment(c.App.Environment) {
		return fmt.Errorf("app.environment must be one of local, integration, production (got %q)", c.App.Environment)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Auth.validate(c.App.Environment); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.GenerationsPerMinute <= 0) {
		return fmt.Errorf("rate_limit: limits must be > 0 when enabled")
	}

	return nil
}

// HasDevUser reports whether the local placeholder identity is configured.
func (a AuthConfig) HasDevUser() bool {
	return strings.TrimSpace(a.DevUserID) != ""
}

func (a AuthConfig) validate(env string) error {
	if a.HasDevUser() {
		if env != EnvLocal {
			return fmt.Errorf("dev_user_id is only allowed in the local environment")
		}
		if _, err := uuid.Parse(a.DevUserID); err != nil {
			return fmt.Errorf("dev_user_id must be a UUID: %w", err)
		}
		if a.JWTSecret == "" {
			return nil
		}
	}

	if len(a.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
	}
	return nil
}

func (a AIConfig) validate() error {
	switch a.Provider {
	case ProviderOpenRouter, ProviderAnthropic:
	default:
		return fmt.Errorf("provider must be %q or %q (got %q)", ProviderOpenRouter, ProviderAnthropic, a.Provider)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	if a.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be > 0 (got %d)", a.RequestsPerMinute)
	}
	if strings.TrimSpace(a.DefaultModel) == "" {
		return fmt.Errorf("default_model is required")
	}
	return nil
}

// AI provider identifiers.
const (
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
)
