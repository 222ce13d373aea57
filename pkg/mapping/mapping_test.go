package mapping

import (
	"testing"
	"time"

	"github.com/chris/intent-reconciliation/pkg/api"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToApiIntent(t *testing.T) {
	conv, err := money.NewConverter(decimal.NewFromInt(1500), 2)
	require.NoError(t, err)
	id := uuid.New()
	now := time.Now()

	out := ToApiIntent(&models.Intent{
		Id:               id.String(),
		OwnerId:          "courier-1",
		Amount:           200,
		Kind:             models.CashCollection,
		Status:           models.PAID,
		Action:           models.ActionNone,
		ResolvedBy:       models.SourceAdmin,
		GatewayReference: "",
		CreatedAt:        now,
		ResolvedAt:       &now,
	}, conv)

	assert.Equal(t, id, uuid.UUID(out.Id))
	assert.Equal(t, "3000.00", out.Amount)
	assert.Equal(t, int64(200), out.AmountMinor)
	assert.Equal(t, api.PAID, out.Status)
	assert.Equal(t, api.CASHCOLLECTION, out.Kind)
	assert.Nil(t, out.GatewayReference)
	require.NotNil(t, out.ResolvedBy)
	assert.Equal(t, "ADMIN", *out.ResolvedBy)
}

func TestToNewIntent(t *testing.T) {
	conv := money.Identity(2)
	id := openapi_types.UUID(uuid.New())
	email := openapi_types.Email("payer@example.com")
	action := api.IntentActionOrderPayment

	out, err := ToNewIntent(&api.NewIntent{
		Id:         &id,
		OwnerId:    "customer-1",
		Amount:     "12.50",
		Kind:       api.GATEWAYCHECKOUT,
		PayerEmail: &email,
		Action:     &action,
	}, conv)

	require.NoError(t, err)
	assert.Equal(t, id.String(), out.ID)
	assert.Equal(t, int64(1250), out.Amount)
	assert.Equal(t, models.GatewayCheckout, out.Kind)
	assert.Equal(t, "payer@example.com", out.PayerEmail)
	assert.Equal(t, models.ActionOrderPayment, out.Action)

	_, err = ToNewIntent(&api.NewIntent{OwnerId: "customer-1", Amount: "lots"}, conv)
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestToApiLedgerEntry(t *testing.T) {
	out := ToApiLedgerEntry(&models.LedgerEntry{EntryID: "i-1", IntentID: "i-1", AccountID: "courier-1", Debit: 20000}, money.Identity(2))

	require.NotNil(t, out.Debit)
	assert.Equal(t, "200.00", *out.Debit)
	assert.Nil(t, out.Credit)
}

func TestToDomainNewAccount(t *testing.T) {
	balance := "5.00"
	acc, err := ToDomainNewAccount(&api.NewAccount{OwnerId: "courier-1", Balance: &balance}, money.Identity(2))

	require.NoError(t, err)
	assert.Equal(t, int64(500), acc.Balance)
	assert.Equal(t, int64(1), acc.Version)
}
