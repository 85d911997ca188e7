package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepository
}

// NewProfileService creates the service behind the channel and watch-history views.
func NewProfileService(profileRepo portsrepo.ProfileRepository) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetChannelProfile(ctx context.Context, viewerID, username string) (*domain.ChannelProfile, error) {
	username = normalizeUsername(username)
	if username == "" {
		return nil, apperrors.NewValidationError("Username is missing")
	}

	profile, err := s.profileRepo.GetChannelProfile(ctx, viewerID, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Channel does not exist")
		}
		return nil, fmt.Errorf("failed to build channel profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	history, err := s.profileRepo.GetWatchHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch watch history: %w", err)
	}
	if history == nil {
		history = []domain.WatchHistoryEntry{}
	}
	return history, nil
}

func (s *profileService) AddToWatchHistory(ctx context.Context, userID, videoID string) error {
	if _, err := uuid.Parse(videoID); err != nil {
		return apperrors.NewValidationError("Invalid video id")
	}

	exists, err := s.profileRepo.VideoExists(ctx, videoID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError("Video not found")
	}

	if err := s.profileRepo.AppendWatchHistory(ctx, userID, videoID); err != nil {
		return fmt.Errorf("failed to add video to watch history: %w", err)
	}
	return nil
}
