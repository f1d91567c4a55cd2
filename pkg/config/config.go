package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	OpenAI  OpenAIConfig
	Backend BackendConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Session SessionConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// OpenAIConfig holds LLM provider configuration.
// Model is validated against the analysis allow-list at request time; an
// empty or unknown value falls back to the default model.
type OpenAIConfig struct {
	APIKey  string        `envconfig:"OPENAI_API_KEY"`
	Model   string        `envconfig:"OPENAI_MODEL"`
	BaseURL string        `envconfig:"OPENAI_API_URL" default:"https://api.openai.com"`
	Timeout time.Duration `envconfig:"OPENAI_TIMEOUT" default:"30s"`
}

// BackendConfig holds the upstream backend configuration for relayed routes
type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_URL" default:"http://localhost:8000"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"15s"`
}

// RedisConfig holds Redis configuration for the session store.
// When Host is empty the service falls back to the in-memory store.
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	Expiry time.Duration `envconfig:"JWT_EXPIRY" default:"1h"`
}

// SessionConfig holds session lifetime configuration
type SessionConfig struct {
	TTL time.Duration `envconfig:"SESSION_TTL" default:"1h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// The OpenAI API key is deliberately not validated here: the analysis
	// path reports a configuration error per request so the relay routes
	// keep working when only the upstream backend is deployed.
	return &cfg, nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// RedisEnabled reports whether a Redis session store is configured
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}
