package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	// Server
	Port     string
	AppEnv   string
	LogLevel string

	// Site
	SiteURL    string
	SiteName   string
	Currency   string
	AdminEmail string

	// Auth
	JwtSecret  string
	JwtTTL     time.Duration
	CronSecret string

	// AWS
	AwsRegion          string
	AwsAccessKeyID     string
	AwsSecretAccessKey string
	DynamoDBEndpoint   string
	S3Endpoint         string
	QuotesTable        string
	EmailQueueTable    string
	DocumentsBucket    string

	// Email
	SmtpHost        string
	SmtpPort        int
	SmtpUsername    string
	SmtpPassword    string
	SmtpFromAddress string

	// Redis (optional, shared rate limiting)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Public rate limiting
	PublicRateLimit  int
	PublicRateWindow time.Duration

	// Outbox worker
	OutboxInterval time.Duration
	OutboxBatch    int
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists && value != "" {
			return value
		}
		return defaultValue
	}

	getRequiredEnv := func(key string) (string, error) {
		value, exists := os.LookupEnv(key)
		if !exists || strings.TrimSpace(value) == "" {
			return "", fmt.Errorf("missing required environment variable: %s", key)
		}
		return value, nil
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		AppEnv:             getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		SiteURL:            strings.TrimRight(getEnv("SITE_URL", "http://localhost:3000"), "/"),
		SiteName:           getEnv("SITE_NAME", "Cinema Equipment Rentals"),
		Currency:           getEnv("CURRENCY", "MAD"),
		AdminEmail:         getEnv("ADMIN_EMAIL", ""),
		CronSecret:         getEnv("CRON_SECRET", ""),
		AwsRegion:          getEnv("AWS_REGION", "us-east-1"),
		AwsAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		AwsSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   getEnv("DYNAMODB_ENDPOINT", ""),
		S3Endpoint:         getEnv("S3_ENDPOINT", ""),
		QuotesTable:        getEnv("QUOTES_TABLE", "quotes"),
		EmailQueueTable:    getEnv("EMAIL_QUEUE_TABLE", "email_queue"),
		DocumentsBucket:    getEnv("DOCUMENTS_BUCKET", "quote-documents"),
		SmtpHost:           getEnv("SMTP_HOST", ""),
		SmtpUsername:       getEnv("SMTP_USERNAME", ""),
		SmtpPassword:       getEnv("SMTP_PASSWORD", ""),
		SmtpFromAddress:    getEnv("SMTP_FROM", "quotes@rental.example.com"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
	}

	var err error
	cfg.JwtSecret, err = getRequiredEnv("JWT_SECRET")
	if err != nil {
		return nil, err
	}

	if cfg.JwtTTL, err = time.ParseDuration(getEnv("JWT_TTL", "12h")); err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	if cfg.SmtpPort, err = strconv.Atoi(getEnv("SMTP_PORT", "587")); err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.PublicRateLimit, err = strconv.Atoi(getEnv("PUBLIC_RATE_LIMIT", "30")); err != nil {
		return nil, fmt.Errorf("invalid PUBLIC_RATE_LIMIT: %w", err)
	}
	if cfg.PublicRateWindow, err = time.ParseDuration(getEnv("PUBLIC_RATE_WINDOW", "1m")); err != nil {
		return nil, fmt.Errorf("invalid PUBLIC_RATE_WINDOW: %w", err)
	}
	if cfg.OutboxInterval, err = time.ParseDuration(getEnv("OUTBOX_INTERVAL", "1m")); err != nil {
		return nil, fmt.Errorf("invalid OUTBOX_INTERVAL: %w", err)
	}
	if cfg.OutboxBatch, err = strconv.Atoi(getEnv("OUTBOX_BATCH", "20")); err != nil {
		return nil, fmt.Errorf("invalid OUTBOX_BATCH: %w", err)
	}

	if cfg.PublicRateLimit <= 0 || cfg.PublicRateWindow <= 0 {
		return nil, fmt.Errorf("PUBLIC_RATE_LIMIT and PUBLIC_RATE_WINDOW must be positive")
	}
	if cfg.OutboxInterval <= 0 || cfg.OutboxBatch <= 0 {
		return nil, fmt.Errorf("OUTBOX_INTERVAL and OUTBOX_BATCH must be positive")
	}
	return cfg, nil
}

// IsProduction reports whether APP_ENV selects production behavior.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}
