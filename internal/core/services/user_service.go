package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/SscSPs/vidtube_backend/internal/dto"
	"github.com/SscSPs/vidtube_backend/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	storage  portssvc.ObjectStorage
}

// NewUserService creates the account service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, storage portssvc.ObjectStorage, events portssvc.EventPublisher) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{Events: events},
		userRepo:    userRepo,
		storage:     storage,
	}
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest, avatarPath, coverPath string) (*domain.User, error) {
	username := normalizeUsername(req.Username)
	email := normalizeEmail(req.Email)
	fullName := strings.TrimSpace(req.FullName)

	if isBlank(username, email, fullName, req.Password) {
		return nil, apperrors.NewValidationError("All fields are required")
	}
	if !strings.Contains(email, "@") {
		return nil, apperrors.NewValidationError("Email must be a valid address")
	}

	taken, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if taken {
		return nil, apperrors.NewDuplicateError("User with email or username already exists")
	}

	if avatarPath == "" {
		return nil, apperrors.NewValidationError("Avatar file is required")
	}
	avatar, err := s.storage.UploadFile(ctx, avatarPath)
	if err != nil {
		s.LogError(ctx, err, "Avatar upload failed during registration")
		return nil, apperrors.NewValidationError("Avatar file is required")
	}

	var cover *domain.StoredObject
	if coverPath != "" {
		cover, err = s.storage.UploadFile(ctx, coverPath)
		if err != nil {
			// The cover image is optional; registration proceeds without it.
			s.LogError(ctx, err, "Cover image upload failed during registration")
			cover = nil
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.discardUploads(ctx, avatar, cover)
		return nil, err
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		AvatarURL:    avatar.URL,
		WatchHistory: []string{},
		PasswordHash: passwordHash,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if cover != nil {
		coverURL := cover.URL
		user.CoverImageURL = &coverURL
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.discardUploads(ctx, avatar, cover)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("username", user.Username))
	s.PublishEvent(ctx, domain.EventUserRegistered, &user)

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// discardUploads removes objects uploaded for a registration that did not complete.
func (s *userService) discardUploads(ctx context.Context, objects ...*domain.StoredObject) {
	for _, obj := range objects {
		if obj != nil {
			s.storage.DeleteFile(ctx, obj.URL)
		}
	}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (s *userService) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unauthorized request")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := normalizeEmail(req.Email)
	if isBlank(fullName, email) {
		return nil, apperrors.NewValidationError("All fields are required")
	}
	if !strings.Contains(email, "@") {
		return nil, apperrors.NewValidationError("Email must be a valid address")
	}

	user, err := s.userRepo.UpdateAccountDetails(ctx, userID, fullName, email)
	if err != nil {
		return nil, fmt.Errorf("failed to update account details: %w", err)
	}

	s.PublishEvent(ctx, domain.EventUserProfileUpdated, user)
	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, userID, localPath string) (*domain.User, error) {
	if localPath == "" {
		return nil, apperrors.NewValidationError("Avatar file is missing")
	}
	return s.replaceImage(ctx, userID, localPath, "avatar", s.userRepo.UpdateAvatar)
}

func (s *userService) UpdateCoverImage(ctx context.Context, userID, localPath string) (*domain.User, error) {
	if localPath == "" {
		return nil, apperrors.NewValidationError("Cover image file is missing")
	}
	return s.replaceImage(ctx, userID, localPath, "cover image", s.userRepo.UpdateCoverImage)
}

type imageUpdater func(ctx context.Context, userID, url string) (*domain.User, string, error)

// replaceImage uploads the new file, stores its URL, then deletes the object it replaced.
func (s *userService) replaceImage(ctx context.Context, userID, localPath, label string, update imageUpdater) (*domain.User, error) {
	obj, err := s.storage.UploadFile(ctx, localPath)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError,
			"Error while uploading "+label,
			fmt.Errorf("%w: %v", apperrors.ErrInternal, err))
	}

	user, previousURL, err := update(ctx, userID, obj.URL)
	if err != nil {
		s.storage.DeleteFile(ctx, obj.URL)
		return nil, fmt.Errorf("failed to update %s: %w", label, err)
	}

	if previousURL != "" && previousURL != obj.URL {
		s.storage.DeleteFile(ctx, previousURL)
	}

	s.LogInfo(ctx, "User image updated", slog.String("user_id", userID), slog.String("image", label))
	sanitized := user.Sanitized()
	return &sanitized, nil
}
