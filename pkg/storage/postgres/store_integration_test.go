//go:build integration

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupStore(t *testing.T, ctx context.Context) *Store {
	t.Helper()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("intents_test"),
		tcpostgres.WithUsername("intents"),
		tcpostgres.WithPassword("intents"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := Connect(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	store := New(pool)
	require.NoError(t, store.Migrate(ctx))
	return store
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t, ctx)

	_, err := store.CreateAccount(ctx, &models.Account{OwnerId: "courier-1", Name: "Ada", Balance: 1000})
	require.NoError(t, err)
	_, err = store.CreateAccount(ctx, &models.Account{OwnerId: "courier-1"})
	assert.ErrorIs(t, err, storage.ErrAccountExists)

	t.Run("Concurrent Duplicates Apply Once", func(t *testing.T) {
		intent, err := store.CreateIntent(ctx, &models.Intent{OwnerId: "courier-1", Amount: 200, Kind: models.CashCollection})
		require.NoError(t, err)

		const workers = 10
		var wg sync.WaitGroup
		var mu sync.Mutex
		appliedCount := 0
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, applied, err := store.ResolveIntent(ctx, intent.Id, models.OutcomeSuccess, models.SourceAdmin)
				assert.NoError(t, err)
				if applied {
					mu.Lock()
					appliedCount++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, appliedCount)
		acc, err := store.GetAccount(ctx, "courier-1")
		require.NoError(t, err)
		assert.Equal(t, int64(800), acc.Balance)

		entries, err := store.ListLedgerEntries(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, intent.Id, entries[0].IntentID)
	})

	t.Run("Insufficient Funds Fails Intent", func(t *testing.T) {
		intent, err := store.CreateIntent(ctx, &models.Intent{OwnerId: "courier-1", Amount: 5000, Kind: models.CashCollection})
		require.NoError(t, err)

		resolved, applied, err := store.ResolveIntent(ctx, intent.Id, models.OutcomeSuccess, models.SourceAdmin)

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		assert.True(t, applied)
		assert.Equal(t, models.FAILED, resolved.Status)
		acc, _ := store.GetAccount(ctx, "courier-1")
		assert.Equal(t, int64(800), acc.Balance)
	})

	t.Run("Gateway Reference", func(t *testing.T) {
		intent, err := store.CreateIntent(ctx, &models.Intent{OwnerId: "courier-1", Amount: 300, Kind: models.GatewayCheckout})
		require.NoError(t, err)

		_, err = store.AttachGatewayReference(ctx, intent.Id, "ref-1", "https://checkout/ref-1")
		require.NoError(t, err)
		_, err = store.AttachGatewayReference(ctx, intent.Id, "ref-2", "https://checkout/ref-2")
		assert.ErrorIs(t, err, storage.ErrReferenceConflict)

		found, err := store.GetIntentByReference(ctx, "ref-1")
		require.NoError(t, err)
		assert.Equal(t, intent.Id, found.Id)

		_, applied, err := store.ResolveIntent(ctx, intent.Id, models.OutcomeSuccess, models.SourceGateway)
		require.NoError(t, err)
		assert.True(t, applied)
		acc, _ := store.GetAccount(ctx, "courier-1")
		assert.Equal(t, int64(1100), acc.Balance)
	})

	t.Run("Queries", func(t *testing.T) {
		owned, err := store.ListIntentsByOwner(ctx, "courier-1")
		require.NoError(t, err)
		assert.Len(t, owned, 3)

		stale, err := store.GetStalePendingIntents(ctx, -time.Minute)
		require.NoError(t, err)
		assert.Empty(t, stale)
	})
}
