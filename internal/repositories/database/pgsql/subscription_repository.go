package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vidtube_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type subscriptionRepository struct {
	BaseRepository
}

func newSubscriptionRepository(db *pgxpool.Pool) portsrepo.SubscriptionRepository {
	return &subscriptionRepository{BaseRepository: BaseRepository{Pool: db}}
}

func (r *subscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (subscription_id, subscriber_id, channel_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (subscriber_id, channel_id) DO NOTHING
	`
	_, err := r.Pool.Exec(ctx, query, sub.SubscriptionID, sub.SubscriberID, sub.ChannelID, sub.CreatedAt)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return apperrors.NewNotFoundError("channel not found")
		}
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

func (r *subscriptionRepository) DeleteSubscription(ctx context.Context, subscriberID, channelID string) error {
	_, err := r.Pool.Exec(ctx,
		`DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2`,
		subscriberID, channelID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}
