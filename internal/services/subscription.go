package services

import (
	"context"
	"time"

	"github.com/learnloop/academy/internal/models"
	"github.com/learnloop/academy/internal/store"
	srvErrors "github.com/learnloop/academy/pkg/errors"
	"github.com/learnloop/academy/pkg/listquery"
)

type SubscriptionService struct {
	store *store.Store
	now   func() time.Time
}

func NewSubscriptionService(st *store.Store) *SubscriptionService {
	return &SubscriptionService{store: st, now: time.Now}
}

// WithClock replaces the time source used by IsActive.
func (s *SubscriptionService) WithClock(now func() time.Time) *SubscriptionService {
	s.now = now
	return s
}

func (s *SubscriptionService) Get(ctx context.Context, userID string) (*models.Subscription, error) {
	subs, err := s.store.Subscriptions().List(ctx, listquery.All(map[string]any{"userId": userID}))
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, srvErrors.NewResourceNotFoundError("subscription", userID)
	}
	return &subs[0], nil
}

// IsActive reports whether userID holds a subscription whose period, plus
// the grace period, has not ended.
func (s *SubscriptionService) IsActive(ctx context.Context, userID string) (bool, error) {
	sub, err := s.Get(ctx, userID)
	if srvErrors.IsResourceNotFoundError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return sub.IsActive(s.now()), nil
}
