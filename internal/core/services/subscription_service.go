package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

type subscriptionService struct {
	BaseService
	userRepo         portsrepo.UserReader
	subscriptionRepo portsrepo.SubscriptionRepository
}

func NewSubscriptionService(userRepo portsrepo.UserReader, subscriptionRepo portsrepo.SubscriptionRepository) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{userRepo: userRepo, subscriptionRepo: subscriptionRepo}
}

// Subscribe is idempotent: subscribing twice leaves a single edge.
func (s *subscriptionService) Subscribe(ctx context.Context, subscriberID, channelID string) error {
	if _, err := uuid.Parse(channelID); err != nil {
		return apperrors.NewValidationError("Invalid channel id")
	}
	if subscriberID == channelID {
		return apperrors.NewValidationError("Cannot subscribe to your own channel")
	}

	if _, err := s.userRepo.FindUserByID(ctx, channelID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Channel not found")
		}
		return fmt.Errorf("failed to look up channel: %w", err)
	}

	sub := domain.Subscription{
		SubscriptionID: uuid.NewString(),
		SubscriberID:   subscriberID,
		ChannelID:      channelID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.subscriptionRepo.SaveSubscription(ctx, sub); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	s.LogInfo(ctx, "Subscribed to channel", slog.String("channel_id", channelID))
	return nil
}

// Unsubscribe is idempotent: removing a missing edge succeeds.
func (s *subscriptionService) Unsubscribe(ctx context.Context, subscriberID, channelID string) error {
	if _, err := uuid.Parse(channelID); err != nil {
		return apperrors.NewValidationError("Invalid channel id")
	}
	if err := s.subscriptionRepo.DeleteSubscription(ctx, subscriberID, channelID); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return nil
}
