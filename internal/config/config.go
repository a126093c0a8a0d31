// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Catalog     CatalogConfig
	Demo        DemoConfig
	Upload      UploadConfig
	Wizard      WizardConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	Log         LogConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type CatalogConfig struct {
	// File path or http(s) URL of the static snapshot loaded at startup.
	SnapshotSource   string
	PlaceholderImage string
}

type DemoConfig struct {
	Username string
	Password string
}

type UploadConfig struct {
	MaxBytes int64
}

type WizardConfig struct {
	// Minutes an untouched draft session is kept. Zero disables expiry.
	SessionTTL int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

const defaultDemoPassword = "admin"

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Catalog: CatalogConfig{
			SnapshotSource:   getEnv("CATALOG_SNAPSHOT", "./public/data.json"),
			PlaceholderImage: getEnv("CATALOG_PLACEHOLDER_IMAGE", "/images/shoes-image.png"),
		},
		Demo: DemoConfig{
			Username: getEnv("DEMO_USERNAME", "admin"),
			Password: getEnv("DEMO_PASSWORD", defaultDemoPassword),
		},
		Upload: UploadConfig{
			MaxBytes: int64(getEnvAsInt("UPLOAD_MAX_BYTES", 10*1024*1024)), // 10MB
		},
		Wizard: WizardConfig{
			SessionTTL: getEnvAsInt("WIZARD_SESSION_TTL", 60),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 10),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Demo.Password == defaultDemoPassword && c.Environment == "production" {
		return fmt.Errorf("demo password must be changed in production")
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}

	if c.Wizard.SessionTTL < 0 {
		return fmt.Errorf("WIZARD_SESSION_TTL cannot be negative")
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit settings must be positive")
	}

	return nil
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%s", s.Port)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
