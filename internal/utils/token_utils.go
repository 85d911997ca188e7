package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims is the payload of an access token. The subject is the user ID.
type AccessTokenClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	jwt.RegisteredClaims
}

// AccessIdentity is the identity embedded into an access token.
type AccessIdentity struct {
	UserID   string
	Username string
	Email    string
	FullName string
}

var errMissingSubject = errors.New("token has no subject")

func registeredClaims(subject, issuer string, now time.Time, expiryDuration time.Duration) (jwt.RegisteredClaims, error) {
	jti, err := GenerateSecureRandomString(16)
	if err != nil {
		return jwt.RegisteredClaims{}, err
	}
	return jwt.RegisteredClaims{
		ID:        jti,
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}, nil
}

// GenerateAccessJWT signs an access token for the identity with HS256.
func GenerateAccessJWT(identity AccessIdentity, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	now := time.Now()
	rc, err := registeredClaims(identity.UserID, issuer, now, expiryDuration)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to build access token claims: %w", err)
	}
	claims := AccessTokenClaims{
		Username:         identity.Username,
		Email:            identity.Email,
		FullName:         identity.FullName,
		RegisteredClaims: rc,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, rc.ExpiresAt.Time, nil
}

// GenerateRefreshJWT signs a refresh token that carries only the user ID.
// Every call yields a distinct token because the jti is random.
func GenerateRefreshJWT(userID string, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	rc, err := registeredClaims(userID, issuer, time.Now(), expiryDuration)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to build refresh token claims: %w", err)
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, rc).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return signed, rc.ExpiresAt.Time, nil
}

// ParseAccessJWT validates an access token's signature and standard claims.
func ParseAccessJWT(tokenString, secretKey, issuer string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}
	if err := parseInto(tokenString, secretKey, issuer, claims); err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errMissingSubject
	}
	return claims, nil
}

// ParseAndValidateJWT parses a JWT token string, validates its signature and standard claims.
// It returns the RegisteredClaims if the token is valid, or an error otherwise.
func ParseAndValidateJWT(tokenString, secretKey, issuer string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if err := parseInto(tokenString, secretKey, issuer, claims); err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errMissingSubject
	}
	return claims, nil
}

func parseInto(tokenString, secretKey, issuer string, claims jwt.Claims) error {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	}, opts...)
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.ErrTokenSignatureInvalid
	}
	return nil
}
