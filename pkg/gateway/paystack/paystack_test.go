package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/chris/intent-reconciliation/pkg/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return New("sk_test_secret", url, WithBackOff(func() backoff.BackOff {
		return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 2)
	}))
}

func TestInitialize(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/transaction/initialize", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))

			var body initializeBody
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, int64(150000), body.Amount)
			assert.Equal(t, "payer@example.com", body.Email)
			assert.Equal(t, "ref-1", body.Reference)
			assert.Equal(t, "intent-1", body.Metadata["intent_id"])

			w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"ref-1"}}`))
		}))
		defer server.Close()

		result, err := newTestClient(server.URL).Initialize(context.Background(), gateway.InitializeRequest{
			IntentID:    "intent-1",
			Reference:   "ref-1",
			Amount:      150000,
			PayerEmail:  "payer@example.com",
			CallbackURL: "https://shop.example.com/gateway/callback?payment_id=intent-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://checkout.paystack.com/abc", result.RedirectURL)
		assert.Equal(t, "ref-1", result.Reference)
	})

	t.Run("Rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Initialize(context.Background(), gateway.InitializeRequest{IntentID: "intent-1", Amount: 100})

		assert.ErrorIs(t, err, gateway.ErrUnavailable)
		assert.Contains(t, err.Error(), "Invalid key")
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := newTestClient(url).Initialize(context.Background(), gateway.InitializeRequest{IntentID: "intent-1", Amount: 100})

		assert.ErrorIs(t, err, gateway.ErrUnavailable)
	})
}

func TestVerify(t *testing.T) {
	cases := map[string]gateway.Status{
		"success":    gateway.StatusSuccess,
		"failed":     gateway.StatusFailed,
		"abandoned":  gateway.StatusFailed,
		"reversed":   gateway.StatusFailed,
		"ongoing":    gateway.StatusPending,
		"processing": gateway.StatusPending,
	}
	for paystackStatus, want := range cases {
		t.Run(paystackStatus, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/transaction/verify/ref-1", r.URL.Path)
				w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"` + paystackStatus + `","reference":"ref-1","amount":20000,"currency":"NGN"}}`))
			}))
			defer server.Close()

			result, err := newTestClient(server.URL).Verify(context.Background(), "ref-1")

			require.NoError(t, err)
			assert.Equal(t, want, result.Status)
			assert.Equal(t, int64(20000), result.Amount)
			assert.NotEmpty(t, result.Raw)
		})
	}

	t.Run("Retries Server Errors", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`{"status":true,"data":{"status":"success","reference":"ref-1","amount":100}}`))
		}))
		defer server.Close()

		result, err := newTestClient(server.URL).Verify(context.Background(), "ref-1")

		require.NoError(t, err)
		assert.Equal(t, gateway.StatusSuccess, result.Status)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("Gives Up", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Verify(context.Background(), "ref-1")

		assert.ErrorIs(t, err, gateway.ErrUnavailable)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("Client Errors Are Not Retried", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Verify(context.Background(), "ref-1")

		assert.ErrorIs(t, err, gateway.ErrUnavailable)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}

func TestParseWebhook(t *testing.T) {
	client := New("sk_test_secret", "")
	body := []byte(`{"event":"charge.success","data":{"reference":"ref-1","status":"success"}}`)

	t.Run("Valid Signature", func(t *testing.T) {
		event, err := client.ParseWebhook(body, client.Sign(body))

		require.NoError(t, err)
		assert.Equal(t, "charge.success", event.Type)
		assert.Equal(t, "ref-1", event.Reference)
	})

	t.Run("Invalid Signature", func(t *testing.T) {
		_, err := client.ParseWebhook(body, New("other", "").Sign(body))
		assert.ErrorIs(t, err, gateway.ErrInvalidSignature)

		_, err = client.ParseWebhook(body, "")
		assert.ErrorIs(t, err, gateway.ErrInvalidSignature)

		_, err = client.ParseWebhook(body, "not-hex")
		assert.ErrorIs(t, err, gateway.ErrInvalidSignature)
	})

	t.Run("Missing Reference", func(t *testing.T) {
		empty := []byte(`{"event":"charge.success","data":{}}`)
		_, err := client.ParseWebhook(empty, client.Sign(empty))
		assert.Error(t, err)
	})
}

func TestNewReference(t *testing.T) {
	a, b := NewReference(), NewReference()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
