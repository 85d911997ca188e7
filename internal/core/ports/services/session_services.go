package services

import (
	"context"

	"github.com/SscSPs/vidtube_backend/internal/core/domain"
)

// SessionSvcFacade orchestrates login, logout, token rotation and access verification.
type SessionSvcFacade interface {
	// Login verifies credentials, issues a pair and overwrites the stored refresh token.
	Login(ctx context.Context, email, password string) (*domain.LoginResult, error)

	// Logout clears the stored refresh token. Calling it repeatedly is safe.
	Logout(ctx context.Context, userID string) error

	// Refresh exchanges the current refresh token for a new pair. A superseded token is rejected.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)

	// ChangePassword replaces the password after verifying the old one.
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error

	// VerifyAccess validates an access token and resolves the sanitized user it names.
	VerifyAccess(ctx context.Context, accessToken string) (*domain.User, error)
}
