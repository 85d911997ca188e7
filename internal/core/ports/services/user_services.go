package services

import (
	"context"

	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	"github.com/SscSPs/vidtube_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a sanitized user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetCurrentUser reloads the authenticated user.
	GetCurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates an account. avatarPath is required, coverPath may be empty.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest, avatarPath, coverPath string) (*domain.User, error)

	// UpdateAccountDetails changes full name and email.
	UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error)

	// UpdateAvatar uploads a new avatar and deletes the previous one.
	UpdateAvatar(ctx context.Context, userID, localPath string) (*domain.User, error)

	// UpdateCoverImage uploads a new cover image and deletes the previous one.
	UpdateCoverImage(ctx context.Context, userID, localPath string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
