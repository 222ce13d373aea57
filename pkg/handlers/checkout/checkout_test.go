package checkout_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/intent-reconciliation/pkg/api"
	"github.com/chris/intent-reconciliation/pkg/gateway"
	gwmocks "github.com/chris/intent-reconciliation/pkg/gateway/mocks"
	"github.com/chris/intent-reconciliation/pkg/gateway/paystack"
	"github.com/chris/intent-reconciliation/pkg/handlers/checkout"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/chris/intent-reconciliation/pkg/reconcile"
	"github.com/chris/intent-reconciliation/pkg/storage/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	handler  *checkout.CheckoutHandler
	store    *memory.Store
	gateway  *gwmocks.Adapter
	paystack *paystack.Client
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    memory.New(),
		gateway:  gwmocks.NewAdapter(t),
		paystack: paystack.New("sk_test_secret", "http://paystack.invalid"),
	}
	_, err := f.store.CreateAccount(context.Background(), &models.Account{OwnerId: "customer-1"})
	require.NoError(t, err)
	engine := reconcile.New(f.store, f.gateway, nil)
	f.handler = checkout.NewCheckoutHandler(engine, f.paystack, paystack.SignatureHeader, "https://shop.example/", money.Identity(2))
	return f
}

func (f *fixture) pending(t *testing.T) *models.Intent {
	t.Helper()
	intent, err := f.handler.Engine.CreateIntent(context.Background(), reconcile.NewIntent{
		OwnerID: "customer-1", Amount: 900, Kind: models.GatewayCheckout, PayerEmail: "payer@example.com",
	})
	require.NoError(t, err)
	return intent
}

func (f *fixture) initiated(t *testing.T, reference string) *models.Intent {
	t.Helper()
	intent := f.pending(t)
	intent, err := f.store.AttachGatewayReference(context.Background(), intent.Id, reference, "https://checkout.paystack.com/"+reference)
	require.NoError(t, err)
	return intent
}

func TestInitiateCheckout(t *testing.T) {
	t.Run("Redirects", func(t *testing.T) {
		f := setup(t)
		intent := f.pending(t)
		f.gateway.On("Initialize", mock.Anything, mock.MatchedBy(func(req gateway.InitializeRequest) bool {
			return req.CallbackURL == "https://shop.example/gateway/callback?payment_id="+intent.Id
		})).Return(&gateway.InitializeResult{RedirectURL: "https://checkout.paystack.com/abc", Reference: "abc"}, nil).Once()

		rr := httptest.NewRecorder()
		f.handler.InitiateCheckout(rr, httptest.NewRequest(http.MethodGet, "/gateway/initiate", nil), api.InitiateCheckoutParams{PaymentId: uuid.MustParse(intent.Id)})

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "https://checkout.paystack.com/abc", rr.Header().Get("Location"))
	})

	t.Run("Already Processed", func(t *testing.T) {
		f := setup(t)

		rr := httptest.NewRecorder()
		f.handler.InitiateCheckout(rr, httptest.NewRequest(http.MethodGet, "/gateway/initiate", nil), api.InitiateCheckoutParams{PaymentId: uuid.New()})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "already processed")
	})

	t.Run("Gateway Unavailable", func(t *testing.T) {
		f := setup(t)
		intent := f.pending(t)
		f.gateway.On("Initialize", mock.Anything, mock.Anything).Return(nil, gateway.ErrUnavailable).Once()

		rr := httptest.NewRecorder()
		f.handler.InitiateCheckout(rr, httptest.NewRequest(http.MethodGet, "/gateway/initiate", nil), api.InitiateCheckoutParams{PaymentId: uuid.MustParse(intent.Id)})

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestGatewayCallback(t *testing.T) {
	t.Run("Paid Then Repeated", func(t *testing.T) {
		f := setup(t)
		intent := f.initiated(t, "ref-1")
		f.gateway.On("Verify", mock.Anything, "ref-1").Return(&gateway.VerifyResult{Status: gateway.StatusSuccess, Reference: "ref-1", Amount: 900}, nil).Once()
		id := uuid.MustParse(intent.Id)

		first := httptest.NewRecorder()
		f.handler.GatewayCallback(first, httptest.NewRequest(http.MethodGet, "/gateway/callback", nil), api.GatewayCallbackParams{Reference: "ref-1", PaymentId: &id})
		second := httptest.NewRecorder()
		f.handler.GatewayCallback(second, httptest.NewRequest(http.MethodGet, "/gateway/callback", nil), api.GatewayCallbackParams{Reference: "ref-1", PaymentId: &id})

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Contains(t, first.Body.String(), `"status":"PAID"`)
		assert.Equal(t, http.StatusOK, second.Code)
		assert.Contains(t, second.Body.String(), `"applied":false`)
		acc, _ := f.store.GetAccount(context.Background(), "customer-1")
		assert.Equal(t, int64(900), acc.Balance)
	})

	t.Run("Unknown Reference", func(t *testing.T) {
		f := setup(t)

		rr := httptest.NewRecorder()
		f.handler.GatewayCallback(rr, httptest.NewRequest(http.MethodGet, "/gateway/callback", nil), api.GatewayCallbackParams{Reference: "nope"})

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Gateway Unavailable", func(t *testing.T) {
		f := setup(t)
		f.initiated(t, "ref-1")
		f.gateway.On("Verify", mock.Anything, "ref-1").Return(nil, gateway.ErrUnavailable).Once()

		rr := httptest.NewRecorder()
		f.handler.GatewayCallback(rr, httptest.NewRequest(http.MethodGet, "/gateway/callback", nil), api.GatewayCallbackParams{Reference: "ref-1"})

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestReceiveGatewayWebhook(t *testing.T) {
	webhook := func(f *fixture, body, signature string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/gateway/webhook", bytes.NewReader([]byte(body)))
		req.Header.Set(paystack.SignatureHeader, signature)
		rr := httptest.NewRecorder()
		f.handler.ReceiveGatewayWebhook(rr, req)
		return rr
	}

	t.Run("Charge Success", func(t *testing.T) {
		f := setup(t)
		f.initiated(t, "ref-1")
		f.gateway.On("Verify", mock.Anything, "ref-1").Return(&gateway.VerifyResult{Status: gateway.StatusSuccess, Amount: 900}, nil).Once()
		body := `{"event":"charge.success","data":{"reference":"ref-1"}}`

		rr := webhook(f, body, f.paystack.Sign([]byte(body)))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"PAID"`)
	})

	t.Run("Bad Signature", func(t *testing.T) {
		f := setup(t)
		f.initiated(t, "ref-1")
		body := `{"event":"charge.success","data":{"reference":"ref-1"}}`

		rr := webhook(f, body, "deadbeef")

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		intent, _ := f.store.GetIntentByReference(context.Background(), "ref-1")
		assert.Equal(t, models.PENDING, intent.Status)
	})

	t.Run("Unknown Reference Acknowledged", func(t *testing.T) {
		f := setup(t)
		body := `{"event":"charge.success","data":{"reference":"nope"}}`

		rr := webhook(f, body, f.paystack.Sign([]byte(body)))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "unknown reference")
	})

	t.Run("Other Events Ignored", func(t *testing.T) {
		f := setup(t)
		body := `{"event":"transfer.success","data":{"reference":"tr-1"}}`

		rr := webhook(f, body, f.paystack.Sign([]byte(body)))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "ignored")
	})

	t.Run("Gateway Unavailable", func(t *testing.T) {
		f := setup(t)
		f.initiated(t, "ref-1")
		f.gateway.On("Verify", mock.Anything, "ref-1").Return(nil, gateway.ErrUnavailable).Once()
		body := `{"event":"charge.success","data":{"reference":"ref-1"}}`

		rr := webhook(f, body, f.paystack.Sign([]byte(body)))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}
