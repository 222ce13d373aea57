package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositiveAmount is returned for zero or negative ledger amounts.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrInsufficientBalance is returned when a debit would take the balance below zero.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Debit subtracts amount from the balance and returns the new balance.
// The account is left untouched when the guard fails.
func (a *Account) Debit(amount int64) (int64, error) {
	if amount <= 0 {
		return a.Balance, ErrNonPositiveAmount
	}
	if amount > a.Balance {
		return a.Balance, fmt.Errorf("debit %d from %s with balance %d: %w", amount, a.OwnerId, a.Balance, ErrInsufficientBalance)
	}
	a.Balance -= amount
	a.Version++
	return a.Balance, nil
}

// Credit adds amount to the balance and returns the new balance.
func (a *Account) Credit(amount int64) (int64, error) {
	if amount <= 0 {
		return a.Balance, ErrNonPositiveAmount
	}
	a.Balance += amount
	a.Version++
	return a.Balance, nil
}

// Apply performs the mutation a Paid intent of the given kind carries.
func (a *Account) Apply(kind IntentKind, amount int64) (int64, error) {
	switch kind {
	case CashCollection:
		return a.Debit(amount)
	case GatewayCheckout:
		return a.Credit(amount)
	default:
		return a.Balance, fmt.Errorf("unknown intent kind %q", kind)
	}
}

// NewLedgerEntry builds the audit entry recorded when intent is marked Paid.
func NewLedgerEntry(intent *Intent) LedgerEntry {
	entry := LedgerEntry{
		EntryID:   intent.Id,
		IntentID:  intent.Id,
		AccountID: intent.OwnerId,
		GSI1PK:    LedgerPartition,
	}
	switch intent.Kind {
	case CashCollection:
		entry.Debit = intent.Amount
		entry.Description = fmt.Sprintf("Cash collected for intent %s", intent.Id)
	default:
		entry.Credit = intent.Amount
		entry.Description = fmt.Sprintf("Gateway checkout for intent %s", intent.Id)
	}
	return entry
}
