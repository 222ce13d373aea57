package ledger

import (
	"net/http"

	"github.com/chris/intent-reconciliation/pkg/api"
	"github.com/chris/intent-reconciliation/pkg/handlers/render"
	"github.com/chris/intent-reconciliation/pkg/mapping"
	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/chris/intent-reconciliation/pkg/storage"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// LedgerHandler holds the dependencies for ledger-related handlers.
type LedgerHandler struct {
	Store     storage.LedgerReader
	Converter *money.Converter
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(store storage.LedgerReader, converter *money.Converter) *LedgerHandler {
	return &LedgerHandler{Store: store, Converter: converter}
}

// ListLedgerEntries returns the most recent audit entries.
func (h *LedgerHandler) ListLedgerEntries(w http.ResponseWriter, r *http.Request, params api.ListLedgerEntriesParams) {
	limit := int32(defaultLimit)
	if params.Limit != nil {
		limit = *params.Limit
	}
	if limit < 1 || limit > maxLimit {
		http.Error(w, "limit must be between 1 and 100", http.StatusBadRequest)
		return
	}

	domainEntries, err := h.Store.ListLedgerEntries(r.Context(), limit)
	if err != nil {
		render.Error(w, r, "retrieve ledger entries", err)
		return
	}

	apiEntries := make([]*api.LedgerEntry, len(domainEntries))
	for i := range domainEntries {
		apiEntries[i] = mapping.ToApiLedgerEntry(&domainEntries[i], h.Converter)
	}
	render.JSON(w, http.StatusOK, apiEntries)
}
