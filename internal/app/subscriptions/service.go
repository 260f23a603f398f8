// Package subscriptions holds the billing-plan workflows.
package subscriptions

import (
	"context"

	"sanctum/internal/models"
)

// Store captures the persistence needs for subscription workflows.
type Store interface {
	ListSubscriptions(ctx context.Context) ([]models.Subscription, error)
	InsertSubscription(ctx context.Context, sub models.Subscription) (models.Subscription, error)
}

// Service coordinates subscription operations.
type Service interface {
	List(ctx context.Context) ([]models.Subscription, error)
	Create(ctx context.Context, sub models.Subscription) (models.Subscription, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListSubscriptions(ctx)
}

func (s *service) Create(ctx context.Context, sub models.Subscription) (models.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return models.Subscription{}, err
	}
	if sub.Status == "" {
		sub.Status = models.SubscriptionActive
	}
	return s.store.InsertSubscription(ctx, sub)
}
