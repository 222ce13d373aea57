package models

import (
	"time"
)

// IntentStatus defines the possible states of a monetary intent.
type IntentStatus string

const (
	PENDING IntentStatus = "PENDING"
	PAID    IntentStatus = "PAID"
	FAILED  IntentStatus = "FAILED"
)

// IsTerminal reports whether no further transition is allowed out of the status.
func (s IntentStatus) IsTerminal() bool {
	return s == PAID || s == FAILED
}

// IntentKind selects which ledger mutation a Paid intent carries.
type IntentKind string

const (
	// CashCollection debits the owner's cash in hand when confirmed.
	CashCollection IntentKind = "CASH_COLLECTION"
	// GatewayCheckout credits the owner's account once the gateway confirms the charge.
	GatewayCheckout IntentKind = "GATEWAY_CHECKOUT"
)

// Valid reports whether k is one of the known kinds.
func (k IntentKind) Valid() bool {
	return k == CashCollection || k == GatewayCheckout
}

// Outcome is the result carried by a confirmation event.
type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailure Outcome = "FAILURE"
)

// Source identifies who delivered a confirmation.
type Source string

const (
	SourceAdmin   Source = "ADMIN"
	SourceGateway Source = "GATEWAY"
)

// Action names the post-resolution behaviour attached to an intent at creation time.
type Action string

const (
	ActionNone         Action = "none"
	ActionOrderPayment Action = "order_payment"
	ActionWalletTopUp  Action = "wallet_top_up"
)

// Intent represents a pending or resolved monetary transfer.
// It includes dynamodbav tags for marshalling.
type Intent struct {
	Id               string       `json:"id" dynamodbav:"id"`
	OwnerId          string       `json:"owner_id" dynamodbav:"owner_id"`
	Amount           int64        `json:"amount" dynamodbav:"amount"`
	Kind             IntentKind   `json:"kind" dynamodbav:"kind"`
	Status           IntentStatus `json:"status" dynamodbav:"status"`
	GatewayReference string       `json:"gateway_reference,omitempty" dynamodbav:"gateway_reference,omitempty"`
	AuthorizationURL string       `json:"authorization_url,omitempty" dynamodbav:"authorization_url,omitempty"`
	PayerEmail       string       `json:"payer_email,omitempty" dynamodbav:"payer_email,omitempty"`
	Action           Action       `json:"action" dynamodbav:"action"`
	ResolvedBy       Source       `json:"resolved_by,omitempty" dynamodbav:"resolved_by,omitempty"`
	CreatedAt        time.Time    `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at" dynamodbav:"updated_at"`
	ResolvedAt       *time.Time   `json:"resolved_at,omitempty" dynamodbav:"resolved_at,omitempty"`
}

// Account holds the mutable balance of one actor, in base minor units.
type Account struct {
	OwnerId   string    `json:"owner_id" dynamodbav:"owner_id"`
	Name      string    `json:"name" dynamodbav:"name"`
	Balance   int64     `json:"balance" dynamodbav:"balance"`
	Version   int64     `json:"version" dynamodbav:"version"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// LedgerEntry is the audit record written together with a Paid transition.
// EntryID equals the intent ID, so an intent can never produce two entries.
type LedgerEntry struct {
	EntryID     string    `dynamodbav:"entry_id"`
	IntentID    string    `dynamodbav:"intent_id"`
	AccountID   string    `dynamodbav:"account_id"`
	Debit       int64     `dynamodbav:"debit,omitempty"`
	Credit      int64     `dynamodbav:"credit,omitempty"`
	Description string    `dynamodbav:"description"`
	Timestamp   time.Time `dynamodbav:"timestamp"`
	GSI1PK      string    `dynamodbav:"gsi1pk"`
}

// LedgerPartition is the constant partition key of the ledger time index.
const LedgerPartition = "LEDGER_ENTRIES"
