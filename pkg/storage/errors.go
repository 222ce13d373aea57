package storage

import "errors"

// ErrInsufficientFunds is returned when an account balance cannot cover a debit.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrIntentNotFound is returned when no intent matches an ID or gateway reference.
var ErrIntentNotFound = errors.New("intent not found")

// ErrIntentExists is returned when an intent ID is reused.
var ErrIntentExists = errors.New("intent already exists")

// ErrIntentNotPending is returned when an operation needs a Pending intent and the intent is terminal.
var ErrIntentNotPending = errors.New("intent is not pending")

// ErrReferenceConflict is returned when a gateway reference was already attached to the intent.
var ErrReferenceConflict = errors.New("gateway reference already attached")

// ErrAccountNotFound is returned when no account exists for an owner.
var ErrAccountNotFound = errors.New("account not found")

// ErrAccountExists is returned when creating an account for an owner that already has one.
var ErrAccountExists = errors.New("account already exists")
