package services

import (
	"context"

	"github.com/SscSPs/vidtube_backend/internal/core/domain"
)

// TokenSvcFacade mints and verifies the signed access/refresh token pair.
type TokenSvcFacade interface {
	// IssuePair mints a fresh access token and refresh token for the user.
	IssuePair(ctx context.Context, user *domain.User) (*domain.TokenPair, error)

	// ParseAccessToken verifies an access token and returns its identity claims.
	ParseAccessToken(token string) (*domain.AccessClaims, error)

	// ParseRefreshToken verifies a refresh token and returns the embedded user ID.
	ParseRefreshToken(token string) (string, error)
}
