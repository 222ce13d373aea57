// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Storage backends.
const (
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds every setting the binaries read at startup.
type Config struct {
	Port           string
	StorageBackend string

	DynamoDBAccountsTable string
	DynamoDBIntentsTable  string
	DynamoDBLedgerTable   string
	DatabaseURL           string

	SQSQueueURL  string
	PushRelayURL string

	PaystackSecretKey string
	PaystackBaseURL   string
	PublicBaseURL     string

	JWTSecret      string
	AllowedOrigins []string

	DisplayExchangeRate  decimal.Decimal
	BaseCurrencyExponent int32
	StaleIntentAge       time.Duration
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup and validates it.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Port:                  get("HTTP_PORT", "8080"),
		StorageBackend:        get("STORAGE_BACKEND", BackendDynamoDB),
		DynamoDBAccountsTable: get("DYNAMODB_ACCOUNTS_TABLE_NAME", ""),
		DynamoDBIntentsTable:  get("DYNAMODB_INTENTS_TABLE_NAME", ""),
		DynamoDBLedgerTable:   get("DYNAMODB_LEDGER_TABLE_NAME", ""),
		DatabaseURL:           get("DATABASE_URL", ""),
		SQSQueueURL:           get("SQS_QUEUE_URL", ""),
		PushRelayURL:          get("PUSH_RELAY_URL", ""),
		PaystackSecretKey:     get("PAYSTACK_SECRET_KEY", ""),
		PaystackBaseURL:       get("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		PublicBaseURL:         get("PUBLIC_BASE_URL", "http://localhost:8080"),
		JWTSecret:             get("JWT_SECRET", ""),
	}

	for _, origin := range strings.Split(get("ALLOWED_ORIGINS", ""), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	rate, err := decimal.NewFromString(get("DISPLAY_EXCHANGE_RATE", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_EXCHANGE_RATE: %w", err)
	}
	cfg.DisplayExchangeRate = rate

	exp, err := strconv.ParseInt(get("BASE_CURRENCY_EXPONENT", "2"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid BASE_CURRENCY_EXPONENT: %w", err)
	}
	cfg.BaseCurrencyExponent = int32(exp)

	age, err := time.ParseDuration(get("STALE_INTENT_AGE", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid STALE_INTENT_AGE: %w", err)
	}
	cfg.StaleIntentAge = age

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	switch c.StorageBackend {
	case BackendDynamoDB:
		if c.DynamoDBAccountsTable == "" || c.DynamoDBIntentsTable == "" || c.DynamoDBLedgerTable == "" {
			errs = append(errs, errors.New("one or more DynamoDB table name environment variables are not set"))
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres backend"))
		}
	case BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend))
	}
	if c.StaleIntentAge <= 0 {
		errs = append(errs, errors.New("STALE_INTENT_AGE must be positive"))
	}
	if _, err := c.Converter(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Converter returns the currency conversion boundary for the configured rate.
func (c *Config) Converter() (*money.Converter, error) {
	return money.NewConverter(c.DisplayExchangeRate, c.BaseCurrencyExponent)
}
