package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Deployment environments.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Config holds all website configuration. It is read once at startup and
// never mutated afterwards.
type Config struct {
	// Server settings
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Address     string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// SHOWCASE_ENABLED overrides the environment-derived gallery gate.
	ShowcaseFlag string `env:"SHOWCASE_ENABLED"`

	// ShowcaseEnabled is resolved by NewConfig and is the only value the
	// rest of the program consults.
	ShowcaseEnabled bool

	// HealthURL is the base URL the healthcheck command probes.
	HealthURL string `env:"HEALTH_URL" envDefault:"http://localhost:4002"`

	Backend BackendConfig
	Signup  SignupConfig
	Email   EmailConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// BackendConfig holds the backend-as-a-service credentials.
type BackendConfig struct {
	// URL is the project endpoint, e.g. https://xyz.supabase.co
	URL string `env:"BACKEND_URL"`
	// AnonKey is the public access key sent with every request
	AnonKey string `env:"BACKEND_ANON_KEY"`
	// SignupTable receives one row per landing-page signup
	SignupTable string        `env:"BACKEND_SIGNUP_TABLE" envDefault:"signups"`
	Timeout     time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
}

// IsConfigured returns true if both the endpoint and the key are present
func (b *BackendConfig) IsConfigured() bool {
	return b.URL != "" && b.AnonKey != ""
}

// SignupConfig limits how often a single client may submit the signup form.
type SignupConfig struct {
	RatePerMinute int `env:"SIGNUP_RATE_PER_MINUTE" envDefault:"6"`
	Burst         int `env:"SIGNUP_BURST" envDefault:"3"`
}

// EmailConfig holds confirmation email settings
type EmailConfig struct {
	Enabled       bool   `env:"EMAIL_ENABLED" envDefault:"false"`
	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`
	FromEmail     string `env:"EMAIL_FROM_ADDRESS" envDefault:"hello@nrml.io"`
	FromName      string `env:"EMAIL_FROM_NAME" envDefault:"nrml.io"`
}

// IsConfigured returns true if Mailgun is configured
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// ListenAddr returns the host:port the HTTP server binds to
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

// IsProduction reports whether the site runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// LoadDotEnv loads .env then .env.local from the working directory.
// Missing files are ignored; .env.local overrides .env.
func LoadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse(nil)
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.Bool("showcase", cfg.ShowcaseEnabled),
		slog.Bool("backend_configured", cfg.Backend.IsConfigured()),
	)

	return cfg, nil
}

// Parse builds a Config from environ, or from the process environment when
// environ is nil.
func Parse(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	showcase, err := resolveShowcase(cfg.Environment, cfg.ShowcaseFlag)
	if err != nil {
		return nil, err
	}
	cfg.ShowcaseEnabled = showcase

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvTest, EnvStaging, EnvProduction:
	default:
		return fmt.Errorf("ENVIRONMENT must be one of development, test, staging, production (got %q)", c.Environment)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("WEBSITE_PORT must be between 1 and 65535 (got %d)", c.Port)
	}
	if c.Signup.RatePerMinute <= 0 {
		return fmt.Errorf("SIGNUP_RATE_PER_MINUTE must be positive (got %d)", c.Signup.RatePerMinute)
	}
	if c.Signup.Burst <= 0 {
		return fmt.Errorf("SIGNUP_BURST must be positive (got %d)", c.Signup.Burst)
	}
	return nil
}

// resolveShowcase decides once whether the design-system gallery is served.
func resolveShowcase(environment, flag string) (bool, error) {
	if strings.TrimSpace(flag) == "" {
		return environment == EnvDevelopment, nil
	}
	enabled, err := strconv.ParseBool(strings.TrimSpace(flag))
	if err != nil {
		return false, fmt.Errorf("SHOWCASE_ENABLED must be a boolean (got %q)", flag)
	}
	return enabled, nil
}
