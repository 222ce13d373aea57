package intents

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/chris/intent-reconciliation/pkg/api"
	"github.com/chris/intent-reconciliation/pkg/handlers/render"
	"github.com/chris/intent-reconciliation/pkg/mapping"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/chris/intent-reconciliation/pkg/reconcile"
	"github.com/chris/intent-reconciliation/pkg/storage"
)

// IntentsHandler holds the dependencies for intent and cash collection handlers.
type IntentsHandler struct {
	Engine    *reconcile.Engine
	Store     storage.IntentReader
	Converter *money.Converter
}

// NewIntentsHandler creates a new IntentsHandler.
func NewIntentsHandler(engine *reconcile.Engine, store storage.IntentReader, converter *money.Converter) *IntentsHandler {
	return &IntentsHandler{Engine: engine, Store: store, Converter: converter}
}

// CreateIntent stores a new PENDING intent.
func (h *IntentsHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var newIntent api.NewIntent
	if err := json.NewDecoder(r.Body).Decode(&newIntent); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	in, err := mapping.ToNewIntent(&newIntent, h.Converter)
	if err != nil {
		render.Error(w, r, "create intent", err)
		return
	}

	created, err := h.Engine.CreateIntent(r.Context(), in)
	if err != nil {
		render.Error(w, r, "create intent", err)
		return
	}
	render.JSON(w, http.StatusCreated, mapping.ToApiIntent(created, h.Converter))
}

// GetIntentById returns one intent.
func (h *IntentsHandler) GetIntentById(w http.ResponseWriter, r *http.Request, intentId api.IntentId) {
	intent, err := h.Store.GetIntent(r.Context(), intentId.String())
	if err != nil {
		render.Error(w, r, "retrieve intent", err)
		return
	}
	render.JSON(w, http.StatusOK, mapping.ToApiIntent(intent, h.Converter))
}

// ListIntentsByOwner returns the transaction history of one owner, newest first.
func (h *IntentsHandler) ListIntentsByOwner(w http.ResponseWriter, r *http.Request, ownerId api.OwnerId) {
	domainIntents, err := h.Store.ListIntentsByOwner(r.Context(), ownerId)
	if err != nil {
		render.Error(w, r, "list intents", err)
		return
	}

	apiIntents := make([]*api.Intent, len(domainIntents))
	for i := range domainIntents {
		apiIntents[i] = mapping.ToApiIntent(&domainIntents[i], h.Converter)
	}
	render.JSON(w, http.StatusOK, apiIntents)
}

// ConfirmIntent applies an admin confirmation. Repeats return the recorded result.
func (h *IntentsHandler) ConfirmIntent(w http.ResponseWriter, r *http.Request, intentId api.IntentId) {
	var req api.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	res, err := h.Engine.Confirm(r.Context(), reconcile.Event{
		IntentID: intentId.String(),
		Outcome:  models.Outcome(req.Outcome),
		Source:   models.SourceAdmin,
	})
	h.writeResult(w, r, "confirm intent", res, err)
}

// CollectCash records cash handed over by a courier against their cash in hand.
func (h *IntentsHandler) CollectCash(w http.ResponseWriter, r *http.Request, intentId api.IntentId) {
	var req api.CashCollection
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	amount, err := h.Converter.ParseToBase(req.Amount)
	if err != nil {
		render.Error(w, r, "collect cash", err)
		return
	}

	res, err := h.Engine.CollectCash(r.Context(), intentId.String(), req.OwnerId, amount)
	if err == nil && res.Intent.Status == models.FAILED {
		// A resubmit of a collection that already failed.
		render.JSON(w, http.StatusUnprocessableEntity, mapping.ToApiConfirmation(res, h.Converter))
		return
	}
	h.writeResult(w, r, "collect cash", res, err)
}

// writeResult renders a confirmation. A resolution that failed for lack of
// funds is reported with 422 together with the recorded intent.
func (h *IntentsHandler) writeResult(w http.ResponseWriter, r *http.Request, action string, res *reconcile.Result, err error) {
	if err != nil {
		if res != nil && errors.Is(err, storage.ErrInsufficientFunds) {
			render.JSON(w, http.StatusUnprocessableEntity, mapping.ToApiConfirmation(res, h.Converter))
			return
		}
		render.Error(w, r, action, err)
		return
	}
	render.JSON(w, http.StatusOK, mapping.ToApiConfirmation(res, h.Converter))
}
