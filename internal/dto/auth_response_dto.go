package dto

import (
	"time"

	"github.com/SscSPs/vidtube_backend/internal/core/domain"
)

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	AccessToken           string    `json:"accessToken"`
	RefreshToken          string    `json:"refreshToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}

// ToLoginResponse maps a login result to its response body.
func ToLoginResponse(res *domain.LoginResult) LoginResponse {
	return LoginResponse{
		User:         ToUserResponse(&res.User),
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
	}
}

// ToRefreshTokenResponse maps a freshly rotated pair to its response body.
func ToRefreshTokenResponse(pair *domain.TokenPair) RefreshTokenResponse {
	return RefreshTokenResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
	}
}
