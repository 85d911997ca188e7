package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "access-secret-for-tests"
	testRefreshSecret = "refresh-secret-for-tests"
	testIssuer        = "vidtube-test"
)

func TestAccessJWT_RoundTrip(t *testing.T) {
	identity := AccessIdentity{UserID: "u-1", Username: "alice", Email: "a@x.com", FullName: "Alice A"}

	token, exp, err := GenerateAccessJWT(identity, testAccessSecret, time.Minute, testIssuer)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), exp, 2*time.Second)

	claims, err := ParseAccessJWT(token, testAccessSecret, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Alice A", claims.FullName)
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshJWT_DistinctPerCall(t *testing.T) {
	first, _, err := GenerateRefreshJWT("u-1", testRefreshSecret, time.Hour, testIssuer)
	require.NoError(t, err)
	second, _, err := GenerateRefreshJWT("u-1", testRefreshSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestParse_RejectsOtherSecret(t *testing.T) {
	refresh, _, err := GenerateRefreshJWT("u-1", testRefreshSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	_, err = ParseAccessJWT(refresh, testAccessSecret, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	access, _, err := GenerateAccessJWT(AccessIdentity{UserID: "u-1"}, testAccessSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(access, testRefreshSecret, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParse_RejectsExpired(t *testing.T) {
	token, _, err := GenerateRefreshJWT("u-1", testRefreshSecret, -time.Minute, testIssuer)
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, testRefreshSecret, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParse_RejectsWrongIssuerAndGarbage(t *testing.T) {
	token, _, err := GenerateRefreshJWT("u-1", testRefreshSecret, time.Hour, "someone-else")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, testRefreshSecret, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	_, err = ParseAndValidateJWT("not-a-token", testRefreshSecret, testIssuer)
	assert.Error(t, err)
}

func TestParse_RejectsNoneAlgorithm(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "u-1",
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, testRefreshSecret, testIssuer)
	assert.Error(t, err)
}
