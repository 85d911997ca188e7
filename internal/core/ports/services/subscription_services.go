package services

import "context"

// SubscriptionSvcFacade manages follow edges between users and channels.
type SubscriptionSvcFacade interface {
	Subscribe(ctx context.Context, subscriberID, channelID string) error
	Unsubscribe(ctx context.Context, subscriberID, channelID string) error
}
