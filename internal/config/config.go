// Package config loads application settings from environment variables using
// envconfig. Anything the process cannot run without is validated here so a
// misconfigured deploy fails at startup, not on first use.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port   string `envconfig:"PORT" default:"8080"`
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	JWTSecret  string        `envconfig:"JWT_SECRET" required:"true"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"168h"`

	// Bootstrap credentials for the single administrator account. When unset
	// the bootstrap is skipped and only pre-existing admins can log in.
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
	AdminName     string `envconfig:"ADMIN_NAME" default:"Administrator"`

	// Brevo transactional email. Empty API key disables sending.
	BrevoAPIKey     string `envconfig:"BREVO_API_KEY"`
	BrevoAdminEmail string `envconfig:"BREVO_ADMIN_EMAIL"`
	BrevoFromEmail  string `envconfig:"BREVO_FROM_EMAIL" default:"noreply@woodersrwanda.rw"`
	BrevoFromName   string `envconfig:"BREVO_FROM_NAME" default:"Wooders Rwanda"`

	// Contentful Content Delivery API.
	ContentfulSpaceID     string `envconfig:"CONTENTFUL_SPACE_ID"`
	ContentfulAccessToken string `envconfig:"CONTENTFUL_ACCESS_TOKEN"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS"`
	LogLevel           string `envconfig:"APP_LOG_LEVEL" default:"info"`
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) Validate() error {
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
