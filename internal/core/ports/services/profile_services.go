package services

import (
	"context"

	"github.com/SscSPs/vidtube_backend/internal/core/domain"
)

// ProfileSvcFacade serves the aggregated channel and watch-history views.
type ProfileSvcFacade interface {
	GetChannelProfile(ctx context.Context, viewerID, username string) (*domain.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error)
	AddToWatchHistory(ctx context.Context, userID, videoID string) error
}
