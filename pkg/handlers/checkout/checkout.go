package checkout

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/chris/intent-reconciliation/pkg/api"
	"github.com/chris/intent-reconciliation/pkg/gateway"
	"github.com/chris/intent-reconciliation/pkg/handlers/render"
	"github.com/chris/intent-reconciliation/pkg/mapping"
	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/chris/intent-reconciliation/pkg/reconcile"
	"github.com/chris/intent-reconciliation/pkg/storage"
)

const maxWebhookBody = 1 << 20

// CheckoutHandler serves the endpoints the payer's browser and the gateway call.
type CheckoutHandler struct {
	Engine          *reconcile.Engine
	Webhooks        gateway.WebhookParser
	SignatureHeader string
	PublicBaseURL   string
	Converter       *money.Converter
}

// NewCheckoutHandler creates a new CheckoutHandler. Callback URLs sent to the
// gateway are built from publicBaseURL.
func NewCheckoutHandler(engine *reconcile.Engine, webhooks gateway.WebhookParser, signatureHeader, publicBaseURL string, converter *money.Converter) *CheckoutHandler {
	return &CheckoutHandler{
		Engine:          engine,
		Webhooks:        webhooks,
		SignatureHeader: signatureHeader,
		PublicBaseURL:   strings.TrimRight(publicBaseURL, "/"),
		Converter:       converter,
	}
}

// InitiateCheckout redirects the payer to the hosted checkout of a pending intent.
func (h *CheckoutHandler) InitiateCheckout(w http.ResponseWriter, r *http.Request, params api.InitiateCheckoutParams) {
	paymentID := params.PaymentId.String()
	callback := fmt.Sprintf("%s/gateway/callback?payment_id=%s", h.PublicBaseURL, url.QueryEscape(paymentID))

	res, err := h.Engine.Initiate(r.Context(), paymentID, callback)
	if err != nil {
		if errors.Is(err, reconcile.ErrAlreadyProcessed) {
			render.JSON(w, http.StatusOK, api.Message{Message: "already processed"})
			return
		}
		render.Error(w, r, "initiate checkout", err)
		return
	}

	http.Redirect(w, r, res.RedirectURL, http.StatusFound)
}

// GatewayCallback handles the payer's return from the hosted checkout.
// The outcome comes from the gateway's verify answer, never from the query.
func (h *CheckoutHandler) GatewayCallback(w http.ResponseWriter, r *http.Request, params api.GatewayCallbackParams) {
	var paymentID string
	if params.PaymentId != nil {
		paymentID = params.PaymentId.String()
	}

	res, err := h.Engine.ConfirmFromGateway(r.Context(), params.Reference, paymentID)
	if err != nil {
		render.Error(w, r, "confirm payment", err)
		return
	}
	render.JSON(w, http.StatusOK, mapping.ToApiConfirmation(res, h.Converter))
}

// ReceiveGatewayWebhook handles signed server-to-server notifications.
// Unknown references are acknowledged so the gateway stops redelivering;
// an unreachable gateway yields 503 so that it retries.
func (h *CheckoutHandler) ReceiveGatewayWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	event, err := h.Webhooks.ParseWebhook(body, r.Header.Get(h.SignatureHeader))
	if err != nil {
		if errors.Is(err, gateway.ErrInvalidSignature) {
			slog.WarnContext(r.Context(), "rejected webhook with invalid signature", "remote_addr", r.RemoteAddr)
			http.Error(w, "Invalid signature", http.StatusUnauthorized)
			return
		}
		http.Error(w, fmt.Sprintf("Invalid webhook: %v", err), http.StatusBadRequest)
		return
	}

	if !strings.HasPrefix(event.Type, "charge.") {
		slog.InfoContext(r.Context(), "ignoring webhook event", "type", event.Type, "reference", event.Reference)
		render.JSON(w, http.StatusOK, api.Message{Message: "ignored"})
		return
	}

	res, err := h.Engine.ConfirmFromGateway(r.Context(), event.Reference, "")
	switch {
	case err == nil:
		render.JSON(w, http.StatusOK, mapping.ToApiConfirmation(res, h.Converter))
	case errors.Is(err, storage.ErrIntentNotFound):
		slog.WarnContext(r.Context(), "webhook for unknown reference", "reference", event.Reference)
		render.JSON(w, http.StatusOK, api.Message{Message: "unknown reference"})
	default:
		render.Error(w, r, "process webhook", err)
	}
}
