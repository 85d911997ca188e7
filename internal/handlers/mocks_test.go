package handlers_test

import (
	"context"

	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/SscSPs/vidtube_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoginResult), args.Error(1)
}

func (m *MockSessionService) Logout(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockSessionService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}

func (m *MockSessionService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	return m.Called(ctx, userID, oldPassword, newPassword).Error(0)
}

func (m *MockSessionService) VerifyAccess(ctx context.Context, accessToken string) (*domain.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) userResult(args mock.Arguments) (*domain.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return m.userResult(m.Called(ctx, userID))
}

func (m *MockUserService) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return m.userResult(m.Called(ctx, userID))
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest, avatarPath, coverPath string) (*domain.User, error) {
	return m.userResult(m.Called(ctx, req, avatarPath, coverPath))
}

func (m *MockUserService) UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error) {
	return m.userResult(m.Called(ctx, userID, req))
}

func (m *MockUserService) UpdateAvatar(ctx context.Context, userID, localPath string) (*domain.User, error) {
	return m.userResult(m.Called(ctx, userID, localPath))
}

func (m *MockUserService) UpdateCoverImage(ctx context.Context, userID, localPath string) (*domain.User, error) {
	return m.userResult(m.Called(ctx, userID, localPath))
}

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetChannelProfile(ctx context.Context, viewerID, username string) (*domain.ChannelProfile, error) {
	args := m.Called(ctx, viewerID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChannelProfile), args.Error(1)
}

func (m *MockProfileService) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WatchHistoryEntry), args.Error(1)
}

func (m *MockProfileService) AddToWatchHistory(ctx context.Context, userID, videoID string) error {
	return m.Called(ctx, userID, videoID).Error(0)
}

// --- Mock SubscriptionService ---
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Subscribe(ctx context.Context, subscriberID, channelID string) error {
	return m.Called(ctx, subscriberID, channelID).Error(0)
}

func (m *MockSubscriptionService) Unsubscribe(ctx context.Context, subscriberID, channelID string) error {
	return m.Called(ctx, subscriberID, channelID).Error(0)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.SessionSvcFacade      = (*MockSessionService)(nil)
	_ portssvc.UserSvcFacade         = (*MockUserService)(nil)
	_ portssvc.ProfileSvcFacade      = (*MockProfileService)(nil)
	_ portssvc.SubscriptionSvcFacade = (*MockSubscriptionService)(nil)
)
