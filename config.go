package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings. Everything comes from the process
// environment (a local .env file is loaded first, without overriding
// variables that are already set).
type Config struct {
	Addr string `env:"ADDR" envDefault:":8081"`

	// Database
	DatabaseDSN string `env:"DB_DSN,required"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	// Security
	JWTSecret            string `env:"JWT_SECRET,required"`
	JWTAlgorithm         string `env:"JWT_ALGORITHM" envDefault:"HS256"`
	AccessTokenExpireMin int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`

	// CORS
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:5173,http://localhost:3000"`

	// Uploads
	UploadBase string `env:"UPLOAD_BASE" envDefault:"uploads"`

	// Cart
	CartTaxRate float64 `env:"CART_TAX_RATE" envDefault:"0.08"`

	// AI
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTAlgorithm != "HS256" {
		return nil, fmt.Errorf("unsupported JWT algorithm %q (only HS256)", cfg.JWTAlgorithm)
	}
	if cfg.AccessTokenExpireMin <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	return &cfg, nil
}

// AccessTokenTTL returns the configured token lifetime.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMin) * time.Minute
}

// CORSOrigins splits the comma-separated origin list.
func (c *Config) CORSOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
