package domain

import "time"

// TokenPair is an access token and the refresh token minted alongside it.
type TokenPair struct {
	AccessToken           string    `json:"accessToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshToken          string    `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}

// AccessClaims is the identity carried inside a verified access token.
type AccessClaims struct {
	UserID   string
	Username string
	Email    string
	FullName string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	User   User
	Tokens TokenPair
}
