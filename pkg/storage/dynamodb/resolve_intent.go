package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/storage"
)

// Positions of the writes inside the Paid transaction, used to read cancellation reasons.
const (
	opIntent = iota
	opAccount
	opLedger
)

// ResolveIntent moves a PENDING intent to PAID or FAILED.
// The status condition on the intent item is the per-record lock: the intent
// flip, the account mutation and the ledger entry are written in a single
// TransactWriteItems call that is cancelled as a whole if the intent has left
// PENDING in the meantime.
func (s *Store) ResolveIntent(ctx context.Context, intentID string, outcome models.Outcome, source models.Source) (*models.Intent, bool, error) {
	// 1. Read the current state with a strongly consistent read.
	intent, err := s.GetIntent(ctx, intentID)
	if err != nil {
		return nil, false, err
	}
	if intent.Status.IsTerminal() {
		return intent, false, nil
	}

	// 2. A failure only flips the status.
	if outcome == models.OutcomeFailure {
		return s.markFailed(ctx, intent, source)
	}

	// 3. A success commits status, balance and ledger together.
	now := time.Now().UTC()
	input, err := s.paidTransaction(intent, source, now)
	if err != nil {
		return nil, false, err
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return s.handlePaidCancellation(ctx, intent, source, tce)
		}
		return nil, false, fmt.Errorf("failed to execute resolution transaction: %w", err)
	}

	intent.Status = models.PAID
	intent.ResolvedBy = source
	intent.ResolvedAt = &now
	intent.UpdatedAt = now
	return intent, true, nil
}

// paidTransaction builds the three writes that make an intent PAID.
func (s *Store) paidTransaction(intent *models.Intent, source models.Source, now time.Time) (*dynamodb.TransactWriteItemsInput, error) {
	entry := models.NewLedgerEntry(intent)
	entry.Timestamp = now
	entryAV, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ledger entry: %w", err)
	}
	amountAV, err := attributevalue.Marshal(intent.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal amount: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	accountUpdate := &types.Update{
		TableName: aws.String(s.AccountsTableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: intent.OwnerId},
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": amountAV,
			":inc":    &types.AttributeValueMemberN{Value: "1"},
			":now":    nowAV,
		},
	}
	switch intent.Kind {
	case models.CashCollection:
		accountUpdate.UpdateExpression = aws.String("SET balance = balance - :amount, version = version + :inc, updated_at = :now")
		accountUpdate.ConditionExpression = aws.String("attribute_exists(owner_id) AND balance >= :amount")
	case models.GatewayCheckout:
		accountUpdate.UpdateExpression = aws.String("SET balance = balance + :amount, version = version + :inc, updated_at = :now")
		accountUpdate.ConditionExpression = aws.String("attribute_exists(owner_id)")
	default:
		return nil, fmt.Errorf("unknown intent kind %q", intent.Kind)
	}

	return &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Flip the intent to PAID, only if still PENDING.
				Update: &types.Update{
					TableName: aws.String(s.IntentsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: intent.Id},
					},
					UpdateExpression:    aws.String("SET #status = :paid, resolved_by = :source, resolved_at = :now, updated_at = :now"),
					ConditionExpression: aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":paid":    &types.AttributeValueMemberS{Value: string(models.PAID)},
						":pending": &types.AttributeValueMemberS{Value: string(models.PENDING)},
						":source":  &types.AttributeValueMemberS{Value: string(source)},
						":now":     nowAV,
					},
				},
			},
			{
				// Operation 2: Apply the balance change.
				Update: accountUpdate,
			},
			{
				// Operation 3: Record the ledger entry, keyed by the intent ID.
				Put: &types.Put{
					TableName:           aws.String(s.LedgerTableName),
					Item:                entryAV,
					ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
				},
			},
		},
	}, nil
}

// handlePaidCancellation maps the cancellation reasons of the Paid transaction.
func (s *Store) handlePaidCancellation(ctx context.Context, intent *models.Intent, source models.Source, tce *types.TransactionCanceledException) (*models.Intent, bool, error) {
	switch {
	case reasonFailed(tce, opIntent), reasonFailed(tce, opLedger):
		// Another resolver got there first.
		current, err := s.GetIntent(ctx, intent.Id)
		if err != nil {
			return nil, false, err
		}
		return current, false, nil
	case reasonFailed(tce, opAccount):
		if _, err := s.GetAccount(ctx, intent.OwnerId); err != nil {
			return nil, false, err
		}
		if intent.Kind != models.CashCollection {
			return nil, false, fmt.Errorf("account update rejected for intent %s", intent.Id)
		}
		slog.WarnContext(ctx, "insufficient funds for cash collection", "intent_id", intent.Id, "owner_id", intent.OwnerId, "amount", intent.Amount)
		failed, applied, err := s.markFailed(ctx, intent, source)
		if err != nil {
			return nil, false, err
		}
		if !applied {
			return failed, false, nil
		}
		return failed, true, storage.ErrInsufficientFunds
	default:
		return nil, false, fmt.Errorf("failed to execute resolution transaction: %w", tce)
	}
}

// markFailed atomically updates the intent status from PENDING to FAILED.
func (s *Store) markFailed(ctx context.Context, intent *models.Intent, source models.Source) (*models.Intent, bool, error) {
	now := time.Now().UTC()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.IntentsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: intent.Id},
		},
		UpdateExpression:    aws.String("SET #status = :failed, resolved_by = :source, resolved_at = :now, updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":failed":  &types.AttributeValueMemberS{Value: string(models.FAILED)},
			":pending": &types.AttributeValueMemberS{Value: string(models.PENDING)},
			":source":  &types.AttributeValueMemberS{Value: string(source)},
			":now":     nowAV,
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			current, getErr := s.GetIntent(ctx, intent.Id)
			if getErr != nil {
				return nil, false, getErr
			}
			return current, false, nil
		}
		return nil, false, fmt.Errorf("failed to update intent status to FAILED: %w", err)
	}

	intent.Status = models.FAILED
	intent.ResolvedBy = source
	intent.ResolvedAt = &now
	intent.UpdatedAt = now
	return intent, true, nil
}

func reasonFailed(tce *types.TransactionCanceledException, i int) bool {
	if len(tce.CancellationReasons) <= i || tce.CancellationReasons[i].Code == nil {
		return false
	}
	return *tce.CancellationReasons[i].Code == conditionalCheckFailed
}
