package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"runtime"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all environment-based configuration for loanctl.
type Config struct {
	// Base URL of the Kim Loans backend, e.g. https://api.kimloan.com
	APIURL string `env:"KIMLOAN_API_URL"`

	// Optional credentials for non-interactive login. When unset, the
	// login command prompts on stdin.
	Username string `env:"KIMLOAN_USERNAME"`
	Password string `env:"KIMLOAN_PASSWORD"`

	// Directory for the local state database. Defaults to ~/.loanctl.
	StateDir string `env:"KIMLOAN_STATE_DIR"`

	// Timeout for individual HTTP requests.
	HTTPTimeout time.Duration `env:"KIMLOAN_HTTP_TIMEOUT" envDefault:"30s"`

	// Environment controls log format
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

// warnInsecureEnvFile checks whether the .env file (if present) has
// overly permissive permissions. On Unix systems, group or world
// readable files risk exposing credentials to other users.
func warnInsecureEnvFile() {
	if runtime.GOOS == "windows" {
		return
	}

	info, err := os.Stat(".env")
	if err != nil {
		return // file does not exist, nothing to check
	}

	mode := info.Mode().Perm()
	if mode&0o077 != 0 {
		log.Printf("WARNING: .env file has insecure permissions %04o; recommended 0600", mode)
	}
}

// Load reads configuration from environment variables.
// It first attempts to load a .env file if present, then parses env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	warnInsecureEnvFile()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("KIMLOAN_API_URL is required")
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("KIMLOAN_API_URL must be an absolute URL, got %q", c.APIURL)
	}

	if c.Password != "" && c.Username == "" {
		return fmt.Errorf("KIMLOAN_PASSWORD is set without KIMLOAN_USERNAME")
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("KIMLOAN_HTTP_TIMEOUT must be positive")
	}

	return nil
}

// IsProduction returns true when the environment is set to production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
