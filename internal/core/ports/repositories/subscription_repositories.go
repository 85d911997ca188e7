package repositories

import (
	"context"

	"github.com/SscSPs/vidtube_backend/internal/core/domain"
)

// SubscriptionRepository manages subscriber to channel edges.
type SubscriptionRepository interface {
	// SaveSubscription inserts the edge if it does not exist yet.
	SaveSubscription(ctx context.Context, sub domain.Subscription) error

	// DeleteSubscription removes the edge if present.
	DeleteSubscription(ctx context.Context, subscriberID, channelID string) error
}
