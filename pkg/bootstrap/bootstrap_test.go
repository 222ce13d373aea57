package bootstrap

import (
	"context"
	"testing"

	"github.com/chris/intent-reconciliation/pkg/config"
	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/chris/intent-reconciliation/pkg/notify"
	"github.com/chris/intent-reconciliation/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		store, closeFn, err := OpenStore(context.Background(), &config.Config{StorageBackend: config.BackendMemory})
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &memory.Store{}, store)
	})

	t.Run("Unknown Backend", func(t *testing.T) {
		_, _, err := OpenStore(context.Background(), &config.Config{StorageBackend: "sqlite"})
		assert.Error(t, err)
	})
}

func TestNotifier(t *testing.T) {
	converter := money.Identity(2)

	t.Run("Nothing Configured", func(t *testing.T) {
		n, err := Notifier(context.Background(), &config.Config{}, converter)
		require.NoError(t, err)
		assert.Equal(t, notify.NoOp{}, n)
	})

	t.Run("Push Relay With Extra Sink", func(t *testing.T) {
		n, err := Notifier(context.Background(), &config.Config{PushRelayURL: "http://relay.local/push"}, converter, notify.NoOp{})
		require.NoError(t, err)

		multi, ok := n.(notify.Multi)
		require.True(t, ok)
		require.Len(t, multi, 2)
		assert.IsType(t, &notify.PushRelay{}, multi[1])
	})
}
