package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/chris/intent-reconciliation/pkg/notify"
	"github.com/chris/intent-reconciliation/pkg/notify/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var cashDeposit = notify.Notification{OwnerID: "courier-1", IntentID: "intent-1", Amount: 20000, Kind: models.CashCollection, Status: models.PAID}

func TestMulti(t *testing.T) {
	first := mocks.NewNotifier(t)
	second := mocks.NewNotifier(t)
	first.On("Notify", mock.Anything, cashDeposit).Return(errors.New("relay down")).Once()
	second.On("Notify", mock.Anything, cashDeposit).Return(nil).Once()

	err := notify.Multi{first, second}.Notify(context.Background(), cashDeposit)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "relay down")
}

func TestSQSNotifier(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := mocks.NewSQSAPI(t)
		client.On("SendMessage", mock.Anything, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
			var n notify.Notification
			return *in.QueueUrl == "https://sqs/queue" && json.Unmarshal([]byte(*in.MessageBody), &n) == nil && n == cashDeposit
		})).Return(&sqs.SendMessageOutput{}, nil).Once()

		err := notify.NewSQSNotifier(client, "https://sqs/queue").Notify(context.Background(), cashDeposit)

		assert.NoError(t, err)
	})

	t.Run("Send Fails", func(t *testing.T) {
		client := mocks.NewSQSAPI(t)
		client.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("throttled")).Once()

		err := notify.NewSQSNotifier(client, "https://sqs/queue").Notify(context.Background(), cashDeposit)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send message to SQS")
	})
}

func TestPushRelay(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var got notify.PushMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		err := notify.NewPushRelay(server.URL, money.Identity(2)).Notify(context.Background(), cashDeposit)

		assert.NoError(t, err)
		assert.Equal(t, "200.00 cash deposit", got.Title)
		assert.Equal(t, "courier-1", got.OwnerID)
	})

	t.Run("Relay Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		err := notify.NewPushRelay(server.URL, money.Identity(2)).Notify(context.Background(), cashDeposit)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("Failed Payment Message", func(t *testing.T) {
		relay := notify.NewPushRelay("http://unused", money.Identity(2))
		msg := relay.Message(notify.Notification{Amount: 150, Kind: models.GatewayCheckout, Status: models.FAILED})
		assert.Equal(t, "1.50 payment failed", msg.Title)
	})
}
