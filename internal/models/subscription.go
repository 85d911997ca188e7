package models

import "time"

// Subscription is a row of the subscriptions table.
type Subscription struct {
	SubscriptionID string    `db:"subscription_id"`
	SubscriberID   string    `db:"subscriber_id"`
	ChannelID      string    `db:"channel_id"`
	CreatedAt      time.Time `db:"created_at"`
}
