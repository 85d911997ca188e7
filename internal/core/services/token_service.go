package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/SscSPs/vidtube_backend/internal/platform/config"
	"github.com/SscSPs/vidtube_backend/internal/utils"
)

// tokenService implements TokenSvcFacade. Access and refresh tokens use distinct secrets from cfg.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// IssuePair mints an access token carrying the user's public identity and a refresh token carrying only its ID.
func (s *tokenService) IssuePair(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	accessToken, accessExp, err := utils.GenerateAccessJWT(utils.AccessIdentity{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	}, s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := utils.GenerateRefreshJWT(user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}

// ParseAccessToken normalizes every verification failure to ErrUnauthorized.
func (s *tokenService) ParseAccessToken(token string) (*domain.AccessClaims, error) {
	claims, err := utils.ParseAccessJWT(token, s.cfg.AccessTokenSecret, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("%w: access token rejected: %v", apperrors.ErrUnauthorized, err)
	}
	return &domain.AccessClaims{
		UserID:   claims.Subject,
		Username: claims.Username,
		Email:    claims.Email,
		FullName: claims.FullName,
	}, nil
}

// ParseRefreshToken normalizes every verification failure to ErrUnauthorized.
func (s *tokenService) ParseRefreshToken(token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.RefreshTokenSecret, s.cfg.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("%w: refresh token rejected: %v", apperrors.ErrUnauthorized, err)
	}
	return claims.Subject, nil
}
