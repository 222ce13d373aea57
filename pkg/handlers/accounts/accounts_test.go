package accounts_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/intent-reconciliation/pkg/api"
	"github.com/chris/intent-reconciliation/pkg/handlers/accounts"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/chris/intent-reconciliation/pkg/storage"
	"github.com/chris/intent-reconciliation/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockStorage := mocks.NewStorage(t)
		mockStorage.On("CreateAccount", mock.Anything, mock.MatchedBy(func(acc *models.Account) bool {
			return acc.OwnerId == "courier-1" && acc.Balance == 50000
		})).Return(&models.Account{OwnerId: "courier-1", Balance: 50000, Version: 1}, nil)

		h := accounts.NewAccountsHandler(mockStorage, money.Identity(2))

		body := []byte(`{"owner_id":"courier-1","balance":"500"}`)
		req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		h.CreateAccount(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		var returned api.Account
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, "500.00", returned.Balance)
		assert.Equal(t, int64(50000), returned.BalanceMinor)
	})

	t.Run("Already Exists", func(t *testing.T) {
		mockStorage := mocks.NewStorage(t)
		mockStorage.On("CreateAccount", mock.Anything, mock.Anything).Return(nil, storage.ErrAccountExists)

		h := accounts.NewAccountsHandler(mockStorage, money.Identity(2))

		req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader([]byte(`{"owner_id":"courier-1"}`)))
		rr := httptest.NewRecorder()
		h.CreateAccount(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		mockStorage := mocks.NewStorage(t)
		h := accounts.NewAccountsHandler(mockStorage, money.Identity(2))

		for _, body := range []string{`{`, `{"name":"no owner"}`, `{"owner_id":"c","balance":"ten"}`, `{"owner_id":"c","balance":"-5"}`} {
			rr := httptest.NewRecorder()
			h.CreateAccount(rr, httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader([]byte(body))))
			assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		}
	})
}

func TestListAccounts(t *testing.T) {
	t.Run("Newest First", func(t *testing.T) {
		mockStorage := mocks.NewStorage(t)
		now := time.Now()
		mockStorage.On("ListAccounts", mock.Anything).Return([]models.Account{
			{OwnerId: "old", CreatedAt: now.Add(-time.Hour)},
			{OwnerId: "new", CreatedAt: now},
		}, nil)

		h := accounts.NewAccountsHandler(mockStorage, money.Identity(2))
		rr := httptest.NewRecorder()
		h.ListAccounts(rr, httptest.NewRequest(http.MethodGet, "/accounts", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned []api.Account
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		require.Len(t, returned, 2)
		assert.Equal(t, "new", returned[0].OwnerId)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockStorage := mocks.NewStorage(t)
		mockStorage.On("ListAccounts", mock.Anything).Return(nil, assert.AnError)

		h := accounts.NewAccountsHandler(mockStorage, money.Identity(2))
		rr := httptest.NewRecorder()
		h.ListAccounts(rr, httptest.NewRequest(http.MethodGet, "/accounts", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := mocks.NewStorage(t)
		mockStorage.On("GetAccount", mock.Anything, "courier-1").Return(&models.Account{OwnerId: "courier-1", Balance: 30000}, nil)

		h := accounts.NewAccountsHandler(mockStorage, money.Identity(2))
		rr := httptest.NewRecorder()
		h.GetAccount(rr, httptest.NewRequest(http.MethodGet, "/accounts/courier-1", nil), "courier-1")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"balance":"300.00"`)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockStorage := mocks.NewStorage(t)
		mockStorage.On("GetAccount", mock.Anything, "ghost").Return(nil, fmt.Errorf("owner ghost: %w", storage.ErrAccountNotFound))

		h := accounts.NewAccountsHandler(mockStorage, money.Identity(2))
		rr := httptest.NewRecorder()
		h.GetAccount(rr, httptest.NewRequest(http.MethodGet, "/accounts/ghost", nil), "ghost")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCreditAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := mocks.NewStorage(t)
		mockStorage.On("CreditAccount", mock.Anything, "courier-1", int64(1250)).Return(&models.Account{OwnerId: "courier-1", Balance: 1250}, nil)

		h := accounts.NewAccountsHandler(mockStorage, money.Identity(2))
		req := httptest.NewRequest(http.MethodPost, "/accounts/courier-1/credit", bytes.NewReader([]byte(`{"amount":"12.50"}`)))
		rr := httptest.NewRecorder()
		h.CreditAccount(rr, req, "courier-1")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Non Positive Amount", func(t *testing.T) {
		mockStorage := mocks.NewStorage(t)
		mockStorage.On("CreditAccount", mock.Anything, "courier-1", int64(0)).Return(nil, models.ErrNonPositiveAmount)

		h := accounts.NewAccountsHandler(mockStorage, money.Identity(2))
		req := httptest.NewRequest(http.MethodPost, "/accounts/courier-1/credit", bytes.NewReader([]byte(`{"amount":"0"}`)))
		rr := httptest.NewRecorder()
		h.CreditAccount(rr, req, "courier-1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
