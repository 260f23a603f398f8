package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sanctum/internal/models"
)

const subscriptionColumns = `id, venue_name, owner_name, plan, amount, status, next_billing, started_at`

func scanSubscription(sc rowScanner) (models.Subscription, error) {
	var sub models.Subscription
	err := sc.Scan(&sub.ID, &sub.Venue, &sub.Owner, &sub.Plan, &sub.Amount, &sub.Status, &sub.NextBilling, &sub.Started)
	if err != nil {
		return models.Subscription{}, err
	}
	return sub, nil
}

// ListSubscriptions returns every subscription, newest first.
func (s *Store) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM subscriptions
		ORDER BY started_at DESC
	`, subscriptionColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []models.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// InsertSubscription stores a new subscription record, assigning the id.
func (s *Store) InsertSubscription(ctx context.Context, sub models.Subscription) (models.Subscription, error) {
	sub.ID = uuid.New().String()
	if sub.Started.IsZero() {
		sub.Started = time.Now().UTC()
	}

	query := fmt.Sprintf(`
		INSERT INTO subscriptions (%s)
		VALUES (%s)
	`, subscriptionColumns, placeholders(8))

	_, err := s.db.ExecContext(ctx, query,
		sub.ID, sub.Venue, sub.Owner, sub.Plan, sub.Amount, string(sub.Status), sub.NextBilling, sub.Started,
	)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("insert subscription: %w", err)
	}
	return sub, nil
}
