package repositories

import (
	"context"

	"github.com/SscSPs/vidtube_backend/internal/core/domain"
)

// ProfileRepository builds derived read views in a single query each.
type ProfileRepository interface {
	// GetChannelProfile returns the channel view of username as seen by viewerID.
	GetChannelProfile(ctx context.Context, viewerID, username string) (*domain.ChannelProfile, error)

	// GetWatchHistory returns the user's watch history in stored order.
	GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error)

	// AppendWatchHistory appends videoID to the user's watch history.
	AppendWatchHistory(ctx context.Context, userID, videoID string) error

	// VideoExists reports whether a video with the given ID exists.
	VideoExists(ctx context.Context, videoID string) (bool, error)
}
