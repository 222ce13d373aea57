package main

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/intent-reconciliation/pkg/notify"
	"github.com/chris/intent-reconciliation/pkg/notify/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeliver(t *testing.T) {
	// Arrange
	sink := mocks.NewNotifier(t)
	sink.On("Notify", mock.Anything, mock.MatchedBy(func(n notify.Notification) bool { return n.IntentID == "i-1" })).Return(nil).Once()
	sink.On("Notify", mock.Anything, mock.MatchedBy(func(n notify.Notification) bool { return n.IntentID == "i-2" })).Return(errors.New("relay down")).Once()

	event := events.SQSEvent{Records: []events.SQSMessage{
		{MessageId: "m-1", Body: `{"owner_id":"courier-1","intent_id":"i-1","amount":200,"kind":"CASH_COLLECTION","status":"PAID"}`},
		{MessageId: "m-2", Body: `{"owner_id":"customer-1","intent_id":"i-2","amount":900,"kind":"GATEWAY_CHECKOUT","status":"PAID"}`},
		{MessageId: "m-3", Body: `not json`},
	}}

	// Act
	resp := deliver(context.Background(), sink, event)

	// Assert
	assert.Equal(t, []events.SQSBatchItemFailure{{ItemIdentifier: "m-2"}}, resp.BatchItemFailures)
}
