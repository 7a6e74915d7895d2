// Package config provides environment configuration for the API server.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store backend selectors.
const (
	StoreMemory = "memory"
	StoreNATS   = "nats"
)

// Config holds all configuration for the application.
type Config struct {
	// Server settings
	ServerPort         string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration

	// LLM settings
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	AnthropicAPIKey string
	Model           string
	MaxTokens       int

	// Generation settings
	StrictValidation  bool
	GenerationTimeout time.Duration

	// Deck store settings
	StoreBackend string
	DeckTTL      time.Duration

	// NATS settings (used when StoreBackend is "nats")
	NATSURL      string
	NATSCAFile   string
	NATSCertFile string
	NATSKeyFile  string
	NATSToken    string

	// JWT settings (auth is disabled when the secret is empty)
	JWTSecret string

	// Rate limiting
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Logging
	LogLevel string

	// Tracing
	TracingEndpoint string
	TracingEnabled  bool
}

// Load reads configuration from the environment, honoring a local .env file
// when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		// Server
		ServerPort:         getEnv("PORT", "8080"),
		ServerReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
		ServerWriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 120*time.Second),

		// LLM
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		Model:           getEnv("GENERATION_MODEL", ""),
		MaxTokens:       getIntEnv("GENERATION_MAX_TOKENS", 8192),

		// Generation
		StrictValidation:  getBoolEnv("STRICT_VALIDATION", false),
		GenerationTimeout: getDurationEnv("GENERATION_TIMEOUT", 120*time.Second),

		// Deck store
		StoreBackend: getEnv("DECK_STORE", StoreMemory),
		DeckTTL:      getDurationEnv("DECK_TTL", 4*time.Hour),

		// NATS
		NATSURL:      getEnv("NATS_URL", "nats://localhost:4222"),
		NATSCAFile:   getEnv("NATS_CA_FILE", ""),
		NATSCertFile: getEnv("NATS_CERT_FILE", ""),
		NATSKeyFile:  getEnv("NATS_KEY_FILE", ""),
		NATSToken:    getEnv("NATS_TOKEN", ""),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", ""),

		// Rate limiting
		RateLimitRequests: getIntEnv("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),

		// Tracing
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4318"),
		TracingEnabled:  getBoolEnv("TRACING_ENABLED", false),
	}
}

// Validate checks configuration that must be present before serving. A
// missing provider credential is a configuration error, not a request-time
// condition.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" && c.AnthropicAPIKey == "" {
		return errors.New("no LLM API key configured: set OPENAI_API_KEY or ANTHROPIC_API_KEY")
	}
	if c.StoreBackend != StoreMemory && c.StoreBackend != StoreNATS {
		return errors.New("DECK_STORE must be \"memory\" or \"nats\"")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
