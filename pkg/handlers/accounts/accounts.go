package accounts

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/chris/intent-reconciliation/pkg/api"
	"github.com/chris/intent-reconciliation/pkg/handlers/render"
	"github.com/chris/intent-reconciliation/pkg/mapping"
	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/chris/intent-reconciliation/pkg/storage"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Store     storage.AccountStore
	Converter *money.Converter
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(store storage.AccountStore, converter *money.Converter) *AccountsHandler {
	return &AccountsHandler{Store: store, Converter: converter}
}

// CreateAccount opens an account, optionally with an opening balance.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var newAccount api.NewAccount
	if err := json.NewDecoder(r.Body).Decode(&newAccount); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newAccount.OwnerId == "" {
		http.Error(w, "owner_id is required", http.StatusBadRequest)
		return
	}

	domainAccount, err := mapping.ToDomainNewAccount(&newAccount, h.Converter)
	if err != nil {
		render.Error(w, r, "create account", err)
		return
	}
	if domainAccount.Balance < 0 {
		http.Error(w, "balance must not be negative", http.StatusBadRequest)
		return
	}

	created, err := h.Store.CreateAccount(r.Context(), domainAccount)
	if err != nil {
		render.Error(w, r, "create account", err)
		return
	}

	render.JSON(w, http.StatusCreated, mapping.ToApiAccount(created, h.Converter))
}

// ListAccounts returns every account, newest first.
func (h *AccountsHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	domainAccounts, err := h.Store.ListAccounts(r.Context())
	if err != nil {
		render.Error(w, r, "list accounts", err)
		return
	}

	sort.Slice(domainAccounts, func(i, j int) bool {
		return domainAccounts[i].CreatedAt.After(domainAccounts[j].CreatedAt)
	})

	apiAccounts := make([]*api.Account, len(domainAccounts))
	for i := range domainAccounts {
		apiAccounts[i] = mapping.ToApiAccount(&domainAccounts[i], h.Converter)
	}
	render.JSON(w, http.StatusOK, apiAccounts)
}

// GetAccount returns one owner's account.
func (h *AccountsHandler) GetAccount(w http.ResponseWriter, r *http.Request, ownerId api.OwnerId) {
	account, err := h.Store.GetAccount(r.Context(), ownerId)
	if err != nil {
		render.Error(w, r, "retrieve account", err)
		return
	}
	render.JSON(w, http.StatusOK, mapping.ToApiAccount(account, h.Converter))
}

// CreditAccount records cash an owner received outside of any intent.
func (h *AccountsHandler) CreditAccount(w http.ResponseWriter, r *http.Request, ownerId api.OwnerId) {
	var req api.CreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	amount, err := h.Converter.ParseToBase(req.Amount)
	if err != nil {
		render.Error(w, r, "credit account", err)
		return
	}

	account, err := h.Store.CreditAccount(r.Context(), ownerId, amount)
	if err != nil {
		render.Error(w, r, "credit account", err)
		return
	}
	render.JSON(w, http.StatusOK, mapping.ToApiAccount(account, h.Converter))
}
