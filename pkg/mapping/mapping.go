// Package mapping converts between domain models and API wire types.
// Amounts cross the money converter here and nowhere else in the HTTP layer.
package mapping

import (
	"github.com/chris/intent-reconciliation/pkg/api"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/chris/intent-reconciliation/pkg/reconcile"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ToApiAccount converts a domain Account to an API Account.
func ToApiAccount(acc *models.Account, conv *money.Converter) *api.Account {
	out := &api.Account{
		OwnerId:      acc.OwnerId,
		Balance:      conv.Format(acc.Balance),
		BalanceMinor: acc.Balance,
		Version:      acc.Version,
	}
	if acc.Name != "" {
		out.Name = &acc.Name
	}
	if !acc.CreatedAt.IsZero() {
		out.CreatedAt = &acc.CreatedAt
	}
	return out
}

// ToDomainNewAccount converts an API NewAccount to a domain Account.
// The opening balance, when given, is a display-currency amount.
func ToDomainNewAccount(in *api.NewAccount, conv *money.Converter) (*models.Account, error) {
	acc := &models.Account{OwnerId: in.OwnerId, Version: 1}
	if in.Name != nil {
		acc.Name = *in.Name
	}
	if in.Balance != nil {
		balance, err := conv.ParseToBase(*in.Balance)
		if err != nil {
			return nil, err
		}
		acc.Balance = balance
	}
	return acc, nil
}

// ToApiIntent converts a domain Intent to an API Intent.
func ToApiIntent(intent *models.Intent, conv *money.Converter) *api.Intent {
	id, _ := uuid.Parse(intent.Id)
	action := api.IntentAction(intent.Action)
	out := &api.Intent{
		Id:          openapi_types.UUID(id),
		OwnerId:     intent.OwnerId,
		Amount:      conv.Format(intent.Amount),
		AmountMinor: intent.Amount,
		Kind:        api.IntentKind(intent.Kind),
		Status:      api.IntentStatus(intent.Status),
		Action:      &action,
		CreatedAt:   intent.CreatedAt,
		UpdatedAt:   intent.UpdatedAt,
		ResolvedAt:  intent.ResolvedAt,
	}
	if intent.GatewayReference != "" {
		out.GatewayReference = &intent.GatewayReference
	}
	if intent.AuthorizationURL != "" {
		out.AuthorizationUrl = &intent.AuthorizationURL
	}
	if intent.ResolvedBy != "" {
		source := string(intent.ResolvedBy)
		out.ResolvedBy = &source
	}
	return out
}

// ToNewIntent converts an API NewIntent to the engine's input, converting the amount to base units.
func ToNewIntent(in *api.NewIntent, conv *money.Converter) (reconcile.NewIntent, error) {
	amount, err := conv.ParseToBase(in.Amount)
	if err != nil {
		return reconcile.NewIntent{}, err
	}
	out := reconcile.NewIntent{
		OwnerID: in.OwnerId,
		Amount:  amount,
		Kind:    models.IntentKind(in.Kind),
	}
	if in.Id != nil {
		out.ID = in.Id.String()
	}
	if in.PayerEmail != nil {
		out.PayerEmail = string(*in.PayerEmail)
	}
	if in.Action != nil {
		out.Action = models.Action(*in.Action)
	}
	return out, nil
}

// ToApiConfirmation converts an engine Result to an API Confirmation.
func ToApiConfirmation(res *reconcile.Result, conv *money.Converter) *api.Confirmation {
	return &api.Confirmation{
		Intent:  *ToApiIntent(res.Intent, conv),
		Applied: res.Applied,
	}
}

// ToApiLedgerEntry converts a domain LedgerEntry to an API LedgerEntry.
func ToApiLedgerEntry(entry *models.LedgerEntry, conv *money.Converter) *api.LedgerEntry {
	out := &api.LedgerEntry{
		EntryId:     entry.EntryID,
		IntentId:    entry.IntentID,
		AccountId:   entry.AccountID,
		Description: entry.Description,
		Timestamp:   entry.Timestamp,
	}
	if entry.Debit != 0 {
		debit := conv.Format(entry.Debit)
		out.Debit = &debit
	}
	if entry.Credit != 0 {
		credit := conv.Format(entry.Credit)
		out.Credit = &credit
	}
	return out
}
