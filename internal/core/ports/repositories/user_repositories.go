package repositories

import (
	"context"

	"github.com/SscSPs/vidtube_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their (normalized) email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their (normalized) username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ExistsByUsernameOrEmail reports whether either value is already taken.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A unique violation is returned as apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateAccountDetails sets full name and email and returns the updated user.
	UpdateAccountDetails(ctx context.Context, userID, fullName, email string) (*domain.User, error)

	// UpdateAvatar sets the avatar URL and returns the updated user and the URL it replaced.
	UpdateAvatar(ctx context.Context, userID, avatarURL string) (*domain.User, string, error)

	// UpdateCoverImage sets the cover image URL and returns the updated user and the URL it replaced, if any.
	UpdateCoverImage(ctx context.Context, userID, coverImageURL string) (*domain.User, string, error)

	// UpdatePassword replaces the password hash; clearSession also nulls the stored refresh token.
	UpdatePassword(ctx context.Context, userID, passwordHash string, clearSession bool) error
}

// RefreshTokenStore persists the single active refresh token of a user as a hash.
type RefreshTokenStore interface {
	// SetRefreshTokenHash unconditionally overwrites the stored hash.
	SetRefreshTokenHash(ctx context.Context, userID, tokenHash string) error

	// SwapRefreshTokenHash replaces oldHash with newHash in one conditional update.
	// It returns apperrors.ErrUnauthorized when the stored hash is no longer oldHash.
	SwapRefreshTokenHash(ctx context.Context, userID, oldHash, newHash string) error

	// ClearRefreshTokenHash sets the stored hash to NULL. Clearing an already empty value is not an error.
	ClearRefreshTokenHash(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	RefreshTokenStore
}
