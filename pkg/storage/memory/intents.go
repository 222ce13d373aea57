package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chris/intent-reconciliation/pkg/models"
	"github.com/chris/intent-reconciliation/pkg/storage"
	"github.com/google/uuid"
)

// CreateIntent stores a new PENDING intent.
func (s *Store) CreateIntent(_ context.Context, intent *models.Intent) (*models.Intent, error) {
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

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.intents[intent.Id]; ok {
		return nil, fmt.Errorf("intent %s: %w", intent.Id, storage.ErrIntentExists)
	}
	stored := *intent
	s.intents[intent.Id] = &stored
	s.locks[intentKey(intent.Id)] = &sync.Mutex{}
	return intent, nil
}

// GetIntent returns a copy of the intent.
func (s *Store) GetIntent(_ context.Context, intentID string) (*models.Intent, error) {
	l, err := s.lockIntent(intentID)
	if err != nil {
		return nil, err
	}
	defer l.Unlock()
	return s.intent(intentID)
}

// intent must be called with the intent lock held.
func (s *Store) intent(intentID string) (*models.Intent, error) {
	s.mu.RLock()
	it, ok := s.intents[intentID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("intent %s: %w", intentID, storage.ErrIntentNotFound)
	}
	cp := *it
	return &cp, nil
}

func (s *Store) putIntent(intent *models.Intent) {
	cp := *intent
	s.mu.Lock()
	s.intents[intent.Id] = &cp
	if intent.GatewayReference != "" {
		s.byRef[intent.GatewayReference] = intent.Id
	}
	s.mu.Unlock()
}

// GetIntentByReference resolves a gateway reference to its intent.
func (s *Store) GetIntentByReference(ctx context.Context, reference string) (*models.Intent, error) {
	s.mu.RLock()
	id, ok := s.byRef[reference]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("intent with reference %s: %w", reference, storage.ErrIntentNotFound)
	}
	return s.GetIntent(ctx, id)
}

// AttachGatewayReference records the gateway handoff on a PENDING intent without one.
func (s *Store) AttachGatewayReference(_ context.Context, intentID, reference, authorizationURL string) (*models.Intent, error) {
	l, err := s.lockIntent(intentID)
	if err != nil {
		return nil, err
	}
	defer l.Unlock()

	intent, err := s.intent(intentID)
	if err != nil {
		return nil, err
	}
	if intent.Status != models.PENDING {
		return nil, fmt.Errorf("intent %s is %s: %w", intentID, intent.Status, storage.ErrIntentNotPending)
	}
	if intent.GatewayReference != "" {
		return nil, fmt.Errorf("intent %s: %w", intentID, storage.ErrReferenceConflict)
	}

	intent.GatewayReference = reference
	intent.AuthorizationURL = authorizationURL
	intent.UpdatedAt = time.Now().UTC()
	s.putIntent(intent)
	return intent, nil
}

// ListIntentsByOwner returns the owner's intents, newest first.
func (s *Store) ListIntentsByOwner(ctx context.Context, ownerID string) ([]models.Intent, error) {
	return s.collect(ctx, func(it *models.Intent) bool { return it.OwnerId == ownerID })
}

// GetStalePendingIntents returns PENDING intents created before now-maxAge, newest first.
func (s *Store) GetStalePendingIntents(ctx context.Context, maxAge time.Duration) ([]models.Intent, error) {
	cutoff := time.Now().UTC().Add(-maxAge)
	return s.collect(ctx, func(it *models.Intent) bool {
		return it.Status == models.PENDING && it.CreatedAt.Before(cutoff)
	})
}

func (s *Store) collect(ctx context.Context, keep func(*models.Intent) bool) ([]models.Intent, error) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.intents))
	for id := range s.intents {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	var out []models.Intent
	for _, id := range ids {
		it, err := s.GetIntent(ctx, id)
		if err != nil {
			return nil, err
		}
		if keep(it) {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
