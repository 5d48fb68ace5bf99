package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAddr             = ":8080"
	defaultSessionMaxAge    = 86400 * 7 // 7 days
	defaultNavBreakpointPx  = 900
	minSessionSecretLength  = 16
	defaultAppName          = "Computer Based Test"
	defaultExternalBasePath = ""
)

// Provider exposes read access to the application configuration.
// Handlers and modules depend on this instead of the concrete struct so tests can stub it.
type Provider interface {
	GetAppAddr() string
	GetAppName() string
	GetSessionSecret() string
	GetSessionMaxAge() int
	GetCookieSecure() bool
	GetStaticDir() string
	GetExternalBaseURL() string
	GetNavBreakpointPx() int
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr         string
	AppName         string
	SessionSecret   string
	SessionMaxAge   int
	CookieSecure    bool
	StaticDir       string
	ExternalBaseURL string
	NavBreakpointPx int
}

// Load reads configuration from the environment, after merging an optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppAddr:         getEnv("APP_ADDR", defaultAddr),
		AppName:         getEnv("APP_NAME", defaultAppName),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		StaticDir:       os.Getenv("STATIC_DIR"),
		ExternalBaseURL: strings.TrimRight(getEnv("EXTERNAL_BASE_URL", defaultExternalBasePath), "/"),
	}

	var err error
	if cfg.SessionMaxAge, err = getEnvInt("SESSION_MAX_AGE", defaultSessionMaxAge); err != nil {
		return nil, err
	}
	if cfg.NavBreakpointPx, err = getEnvInt("NAV_BREAKPOINT_PX", defaultNavBreakpointPx); err != nil {
		return nil, err
	}
	if raw := os.Getenv("COOKIE_SECURE"); raw != "" {
		if cfg.CookieSecure, err = strconv.ParseBool(raw); err != nil {
			return nil, fmt.Errorf("COOKIE_SECURE: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// New loads configuration and exits the process if it is invalid.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return cfg
}

// Validate checks the invariants the server relies on at startup.
func (c *Config) Validate() error {
	if len(c.SessionSecret) < minSessionSecretLength {
		return fmt.Errorf("SESSION_SECRET must be at least %d bytes", minSessionSecretLength)
	}
	if c.SessionMaxAge <= 0 {
		return fmt.Errorf("SESSION_MAX_AGE must be positive, got %d", c.SessionMaxAge)
	}
	if c.NavBreakpointPx <= 0 {
		return fmt.Errorf("NAV_BREAKPOINT_PX must be positive, got %d", c.NavBreakpointPx)
	}
	return nil
}

func (c *Config) GetAppAddr() string         { return c.AppAddr }
func (c *Config) GetAppName() string         { return c.AppName }
func (c *Config) GetSessionSecret() string   { return c.SessionSecret }
func (c *Config) GetSessionMaxAge() int      { return c.SessionMaxAge }
func (c *Config) GetCookieSecure() bool      { return c.CookieSecure }
func (c *Config) GetStaticDir() string       { return c.StaticDir }
func (c *Config) GetExternalBaseURL() string { return c.ExternalBaseURL }
func (c *Config) GetNavBreakpointPx() int    { return c.NavBreakpointPx }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
