package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/SscSPs/vidtube_backend/internal/platform/config"
	"github.com/SscSPs/vidtube_backend/internal/utils"
)

const msgStaleRefreshToken = "Refresh token is expired or used"

type sessionService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
	tokens   portssvc.TokenSvcFacade
}

// NewSessionService creates the session controller.
func NewSessionService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvcFacade, events portssvc.EventPublisher) portssvc.SessionSvcFacade {
	return &sessionService{
		BaseService: BaseService{Events: events},
		cfg:         cfg,
		userRepo:    userRepo,
		tokens:      tokens,
	}
}

func (s *sessionService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	email = normalizeEmail(email)
	if isBlank(email, password) {
		return nil, apperrors.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User does not exist")
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected: password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError("Invalid user credentials")
	}

	pair, err := s.tokens.IssuePair(ctx, user)
	if err != nil {
		return nil, err
	}

	// Login always supersedes whatever session was stored before.
	if err := s.userRepo.SetRefreshTokenHash(ctx, user.UserID, utils.HashRefreshToken(pair.RefreshToken)); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return &domain.LoginResult{User: user.Sanitized(), Tokens: *pair}, nil
}

func (s *sessionService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshTokenHash(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewUnauthorizedError("Unauthorized request")
		}
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	s.LogInfo(ctx, "User logged out", slog.String("user_id", userID))
	return nil
}

func (s *sessionService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if isBlank(refreshToken) {
		return nil, apperrors.NewUnauthorizedError("Unauthorized request")
	}

	userID, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		s.LogDebug(ctx, "Refresh token failed verification", slog.String("error", err.Error()))
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
		}
		return nil, fmt.Errorf("failed to look up user for refresh: %w", err)
	}

	if user.RefreshTokenHash == nil || !utils.CompareRefreshTokenHash(refreshToken, *user.RefreshTokenHash) {
		s.LogInfo(ctx, "Refresh rejected: token is not the current one", slog.String("user_id", userID))
		return nil, apperrors.NewUnauthorizedError(msgStaleRefreshToken)
	}

	pair, err := s.tokens.IssuePair(ctx, user)
	if err != nil {
		return nil, err
	}

	err = s.userRepo.SwapRefreshTokenHash(ctx, userID, utils.HashRefreshToken(refreshToken), utils.HashRefreshToken(pair.RefreshToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			s.LogInfo(ctx, "Refresh lost a concurrent rotation", slog.String("user_id", userID))
			return nil, apperrors.NewUnauthorizedError(msgStaleRefreshToken)
		}
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return pair, nil
}

func (s *sessionService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if isBlank(oldPassword, newPassword) {
		return apperrors.NewValidationError("Old and new password are required")
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user for password change: %w", err)
	}

	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid old password", apperrors.ErrInvalidOldPassword)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash, s.cfg.RevokeSessionsOnPasswordChange); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}

	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID), slog.Bool("sessions_revoked", s.cfg.RevokeSessionsOnPasswordChange))
	s.PublishEvent(ctx, domain.EventUserPasswordChanged, user)
	return nil
}

func (s *sessionService) VerifyAccess(ctx context.Context, accessToken string) (*domain.User, error) {
	if isBlank(accessToken) {
		return nil, apperrors.NewUnauthorizedError("Unauthorized request")
	}

	claims, err := s.tokens.ParseAccessToken(accessToken)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Invalid access token", err)
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid access token")
		}
		return nil, fmt.Errorf("failed to resolve access token user: %w", err)
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}
