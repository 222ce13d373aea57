package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const intentColumns = `id, owner_id, amount, kind, status, COALESCE(gateway_reference, ''), authorization_url,
	payer_email, action, resolved_by, created_at, updated_at, resolved_at`

func scanIntent(row pgx.Row) (*models.Intent, error) {
	var it models.Intent
	err := row.Scan(&it.Id, &it.OwnerId, &it.Amount, &it.Kind, &it.Status, &it.GatewayReference, &it.AuthorizationURL,
		&it.PayerEmail, &it.Action, &it.ResolvedBy, &it.CreatedAt, &it.UpdatedAt, &it.ResolvedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func collectIntents(rows pgx.Rows) ([]models.Intent, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Intent, error) {
		it, err := scanIntent(row)
		if err != nil {
			return models.Intent{}, err
		}
		return *it, nil
	})
}

// CreateIntent inserts a new PENDING intent.
func (s *Store) CreateIntent(ctx context.Context, intent *models.Intent) (*models.Intent, error) {
	now := time.Now().UTC()
	if intent.Id == "" {
		intent.Id = uuid.New().String()
	}
	if intent.Action == "" {
		intent.Action = models.ActionNone
	}
	intent.Status = models.PENDING
	intent.CreatedAt = now
	intent.UpdatedAt = now

	_, err := s.pool.Exec(ctx,
		`INSERT INTO intents (id, owner_id, amount, kind, status, payer_email, action, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		intent.Id, intent.OwnerId, intent.Amount, intent.Kind, intent.Status, intent.PayerEmail, intent.Action,
		intent.CreatedAt, intent.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("intent %s: %w", intent.Id, storage.ErrIntentExists)
		}
		return nil, fmt.Errorf("failed to insert intent: %w", err)
	}
	return intent, nil
}

// GetIntent retrieves an intent by ID.
func (s *Store) GetIntent(ctx context.Context, intentID string) (*models.Intent, error) {
	it, err := scanIntent(s.pool.QueryRow(ctx, `SELECT `+intentColumns+` FROM intents WHERE id = $1`, intentID))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("intent %s: %w", intentID, storage.ErrIntentNotFound)
		}
		return nil, fmt.Errorf("failed to get intent: %w", err)
	}
	return it, nil
}

// GetIntentByReference retrieves an intent by gateway reference.
func (s *Store) GetIntentByReference(ctx context.Context, reference string) (*models.Intent, error) {
	it, err := scanIntent(s.pool.QueryRow(ctx, `SELECT `+intentColumns+` FROM intents WHERE gateway_reference = $1`, reference))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("intent with reference %s: %w", reference, storage.ErrIntentNotFound)
		}
		return nil, fmt.Errorf("failed to get intent by reference: %w", err)
	}
	return it, nil
}

// AttachGatewayReference records the gateway handoff on a PENDING intent without one.
func (s *Store) AttachGatewayReference(ctx context.Context, intentID, reference, authorizationURL string) (*models.Intent, error) {
	it, err := scanIntent(s.pool.QueryRow(ctx,
		`UPDATE intents SET gateway_reference = $2, authorization_url = $3, updated_at = $4
		 WHERE id = $1 AND status = $5 AND gateway_reference IS NULL
		 RETURNING `+intentColumns,
		intentID, reference, authorizationURL, time.Now().UTC(), models.PENDING))
	if err == nil {
		return it, nil
	}
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("reference %s: %w", reference, storage.ErrReferenceConflict)
	}
	if !isNoRows(err) {
		return nil, fmt.Errorf("failed to attach gateway reference: %w", err)
	}

	current, err := s.GetIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}
	if current.Status != models.PENDING {
		return nil, fmt.Errorf("intent %s is %s: %w", intentID, current.Status, storage.ErrIntentNotPending)
	}
	return nil, fmt.Errorf("intent %s: %w", intentID, storage.ErrReferenceConflict)
}

// ListIntentsByOwner returns the owner's intents, newest first.
func (s *Store) ListIntentsByOwner(ctx context.Context, ownerID string) ([]models.Intent, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+intentColumns+` FROM intents WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list intents by owner: %w", err)
	}
	intents, err := collectIntents(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan intents: %w", err)
	}
	return intents, nil
}

// GetStalePendingIntents returns PENDING intents created before now-maxAge.
func (s *Store) GetStalePendingIntents(ctx context.Context, maxAge time.Duration) ([]models.Intent, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+intentColumns+` FROM intents WHERE status = $1 AND created_at < $2 ORDER BY created_at`,
		models.PENDING, time.Now().UTC().Add(-maxAge))
	if err != nil {
		return nil, fmt.Errorf("failed to query for stale intents: %w", err)
	}
	intents, err := collectIntents(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan stale intents: %w", err)
	}
	return intents, nil
}
