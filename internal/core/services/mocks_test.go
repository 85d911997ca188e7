package services_test

import (
	"context"
	"sync"

	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func userOrNil(v any) *domain.User {
	if v == nil {
		return nil
	}
	return v.(*domain.User)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAccountDetails(ctx context.Context, userID, fullName, email string) (*domain.User, error) {
	args := m.Called(ctx, userID, fullName, email)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, userID, avatarURL string) (*domain.User, string, error) {
	args := m.Called(ctx, userID, avatarURL)
	return userOrNil(args.Get(0)), args.String(1), args.Error(2)
}

func (m *MockUserRepository) UpdateCoverImage(ctx context.Context, userID, coverImageURL string) (*domain.User, string, error) {
	args := m.Called(ctx, userID, coverImageURL)
	return userOrNil(args.Get(0)), args.String(1), args.Error(2)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string, clearSession bool) error {
	args := m.Called(ctx, userID, passwordHash, clearSession)
	return args.Error(0)
}

func (m *MockUserRepository) SetRefreshTokenHash(ctx context.Context, userID, tokenHash string) error {
	args := m.Called(ctx, userID, tokenHash)
	return args.Error(0)
}

func (m *MockUserRepository) SwapRefreshTokenHash(ctx context.Context, userID, oldHash, newHash string) error {
	args := m.Called(ctx, userID, oldHash, newHash)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshTokenHash(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- In-memory user store ---

// memUserRepo keeps users in a map and applies the same conditional swap the database does.
type memUserRepo struct {
	MockUserRepository
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo(users ...domain.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*domain.User)}
	for i := range users {
		u := users[i]
		r.users[u.UserID] = &u
	}
	return r
}

func (r *memUserRepo) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memUserRepo) SetRefreshTokenHash(_ context.Context, userID, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	h := tokenHash
	u.RefreshTokenHash = &h
	return nil
}

func (r *memUserRepo) SwapRefreshTokenHash(_ context.Context, userID, oldHash, newHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok || u.RefreshTokenHash == nil || *u.RefreshTokenHash != oldHash {
		return apperrors.ErrUnauthorized
	}
	h := newHash
	u.RefreshTokenHash = &h
	return nil
}

func (r *memUserRepo) ClearRefreshTokenHash(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.RefreshTokenHash = nil
	return nil
}

func (r *memUserRepo) UpdatePassword(_ context.Context, userID, passwordHash string, clearSession bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.PasswordHash = passwordHash
	if clearSession {
		u.RefreshTokenHash = nil
	}
	return nil
}

func (r *memUserRepo) storedHash(userID string) *string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok {
		return u.RefreshTokenHash
	}
	return nil
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetChannelProfile(ctx context.Context, viewerID, username string) (*domain.ChannelProfile, error) {
	args := m.Called(ctx, viewerID, username)
	var p *domain.ChannelProfile
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.ChannelProfile)
	}
	return p, args.Error(1)
}

func (m *MockProfileRepository) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	args := m.Called(ctx, userID)
	var h []domain.WatchHistoryEntry
	if args.Get(0) != nil {
		h = args.Get(0).([]domain.WatchHistoryEntry)
	}
	return h, args.Error(1)
}

func (m *MockProfileRepository) AppendWatchHistory(ctx context.Context, userID, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockProfileRepository) VideoExists(ctx context.Context, videoID string) (bool, error) {
	args := m.Called(ctx, videoID)
	return args.Bool(0), args.Error(1)
}

// --- Mock SubscriptionRepository ---
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriberID, channelID string) error {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Error(0)
}

// --- Mock ObjectStorage ---
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) UploadFile(ctx context.Context, localPath string) (*domain.StoredObject, error) {
	args := m.Called(ctx, localPath)
	var obj *domain.StoredObject
	if args.Get(0) != nil {
		obj = args.Get(0).(*domain.StoredObject)
	}
	return obj, args.Error(1)
}

func (m *MockObjectStorage) DeleteFile(ctx context.Context, url string) {
	m.Called(ctx, url)
}

// --- Recording EventPublisher ---
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.AccountEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.AccountEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []domain.AccountEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.AccountEventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
