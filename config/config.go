package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Google   GoogleConfig
	Session  SessionConfig
	Deploy   DeployConfig
	App      AppConfig
}

type ServerConfig struct {
	Port            string   `env:"PORT" envDefault:"8080"`
	FrontendOrigins []string `env:"FRONTEND_ORIGINS" envDefault:"http://localhost:5173"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"folio"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type RedisConfig struct {
	// Empty URL selects the in-process cache.
	URL      string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

type GoogleConfig struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	RedirectURL  string `env:"GOOGLE_REDIRECT_URL" envDefault:"http://localhost:8080/login/google/callback"`
	// SelfID is the Google subject allowed to sign in as admin.
	SelfID string `env:"GOOGLE_SELF_ID"`
}

type SessionConfig struct {
	CookieSecure bool `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

type DeployConfig struct {
	HookURL      string        `env:"DEPLOY_HOOK_URL"`
	HookSecret   string        `env:"DEPLOY_HOOK_SECRET"`
	PollInterval time.Duration `env:"DEPLOY_POLL_INTERVAL" envDefault:"1m"`
	MinGap       time.Duration `env:"DEPLOY_MIN_GAP" envDefault:"5m"`
}

type AppConfig struct {
	Environment      string            `env:"APP_ENV" envDefault:"development"`
	Version          string            `env:"APP_VERSION" envDefault:"1.0.0"`
	Redirects        map[string]string `env:"APP_REDIRECTS" envKeyValSeparator:"="`
	AdminLandingPage string            `env:"ADMIN_LANDING_PAGE" envDefault:"/admin/projects"`
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse binds the current environment without touching .env files.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	if c.Google.ClientID != "" {
		if c.Google.ClientSecret == "" {
			return fmt.Errorf("GOOGLE_CLIENT_SECRET is required when GOOGLE_CLIENT_ID is set")
		}
		if c.Google.SelfID == "" {
			return fmt.Errorf("GOOGLE_SELF_ID is required when GOOGLE_CLIENT_ID is set")
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
