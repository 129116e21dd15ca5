package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Assistant
	DefaultTab string

	// Classifier (Gemini); empty model disables the interpret endpoint
	GeminiModel         string
	ClassifierCacheSize int
	ClassifierCacheTTL  time.Duration

	// AMQP; empty URL disables event publishing
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8082"),
		DefaultTab: getEnv("DEFAULT_TAB", "transactions"),

		GeminiModel:         getEnv("GEMINI_MODEL", ""),
		ClassifierCacheSize: getEnvInt("CLASSIFIER_CACHE_SIZE", 200),
		ClassifierCacheTTL:  getEnvDuration("CLASSIFIER_CACHE_TTL", 10*time.Minute),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "hablapp"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "command_events"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DefaultTab == "" {
		errors = append(errors, "default tab cannot be empty")
	}

	// Validate classifier cache settings
	if c.ClassifierCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid classifier cache size %d: must be at least 1", c.ClassifierCacheSize))
	}
	if c.ClassifierCacheTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid classifier cache TTL %v: must be at least 1 second", c.ClassifierCacheTTL))
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// ClassifierEnabled reports whether a Gemini model was configured.
func (c *Config) ClassifierEnabled() bool {
	return c.GeminiModel != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
