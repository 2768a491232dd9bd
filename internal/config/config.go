package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    string

	// Storage
	DataDir        string
	UploadDir      string
	MaxUploadBytes int64

	// Admin sessions
	SessionSecret string
	SessionTTL    time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		DataDir:   getEnv("DATA_DIR", "."),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		SessionSecret: getEnv("SESSION_SECRET", ""),
	}

	maxBytes, err := getEnvInt64("MAX_UPLOAD_BYTES", 5<<20)
	if err != nil {
		return nil, err
	}
	cfg.MaxUploadBytes = maxBytes

	ttlMinutes, err := getEnvInt64("SESSION_TTL_MINUTES", 720)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL = time.Duration(ttlMinutes) * time.Minute

	if cfg.SessionSecret == "" {
		// Ephemeral secret: admin session tokens stop working across
		// restarts, password auth is unaffected.
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		cfg.SessionSecret = secret
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	return nil
}

// Paths of the four JSON documents, colocated with the data directory.

func (c *Config) ProductsPath() string { return filepath.Join(c.DataDir, "products.json") }
func (c *Config) OrdersPath() string   { return filepath.Join(c.DataDir, "orders.json") }
func (c *Config) SitePath() string     { return filepath.Join(c.DataDir, "site.json") }
func (c *Config) ConfigPath() string   { return filepath.Join(c.DataDir, "config.json") }

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
