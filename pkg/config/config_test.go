package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := FromEnv(env(map[string]string{"STORAGE_BACKEND": "memory"}))

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "https://api.paystack.co", cfg.PaystackBaseURL)
		assert.True(t, cfg.DisplayExchangeRate.Equal(decimal.NewFromInt(1)))
		assert.Equal(t, int32(2), cfg.BaseCurrencyExponent)
		assert.Equal(t, 30*time.Minute, cfg.StaleIntentAge)
		assert.Empty(t, cfg.AllowedOrigins)
	})

	t.Run("Allowed Origins", func(t *testing.T) {
		cfg, err := FromEnv(env(map[string]string{
			"STORAGE_BACKEND": "memory",
			"ALLOWED_ORIGINS": "https://admin.example.com, http://localhost:3000,",
		}))

		require.NoError(t, err)
		assert.Equal(t, []string{"https://admin.example.com", "http://localhost:3000"}, cfg.AllowedOrigins)
	})

	t.Run("DynamoDB", func(t *testing.T) {
		cfg, err := FromEnv(env(map[string]string{
			"DYNAMODB_ACCOUNTS_TABLE_NAME": "accounts",
			"DYNAMODB_INTENTS_TABLE_NAME":  "intents",
			"DYNAMODB_LEDGER_TABLE_NAME":   "ledger",
			"DISPLAY_EXCHANGE_RATE":        "1500",
			"STALE_INTENT_AGE":             "1h",
		}))

		require.NoError(t, err)
		assert.Equal(t, BackendDynamoDB, cfg.StorageBackend)
		assert.Equal(t, "intents", cfg.DynamoDBIntentsTable)
		assert.Equal(t, time.Hour, cfg.StaleIntentAge)
		conv, err := cfg.Converter()
		require.NoError(t, err)
		assert.Equal(t, "3000.00", conv.Format(200))
	})

	t.Run("Missing Tables", func(t *testing.T) {
		_, err := FromEnv(env(map[string]string{}))
		assert.Error(t, err)
	})

	t.Run("Postgres Needs URL", func(t *testing.T) {
		_, err := FromEnv(env(map[string]string{"STORAGE_BACKEND": "postgres"}))
		assert.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("Invalid Values", func(t *testing.T) {
		_, err := FromEnv(env(map[string]string{"STORAGE_BACKEND": "memory", "DISPLAY_EXCHANGE_RATE": "abc"}))
		assert.Error(t, err)

		_, err = FromEnv(env(map[string]string{"STORAGE_BACKEND": "memory", "DISPLAY_EXCHANGE_RATE": "0"}))
		assert.Error(t, err)

		_, err = FromEnv(env(map[string]string{"STORAGE_BACKEND": "memory", "STALE_INTENT_AGE": "soon"}))
		assert.Error(t, err)

		_, err = FromEnv(env(map[string]string{"STORAGE_BACKEND": "sqlite"}))
		assert.ErrorContains(t, err, "unknown STORAGE_BACKEND")
	})
}
