package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/blogrest/blog_backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
	testIssuer        = "blog-backend-test"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	tokenString, err := utils.GenerateJWT("user-123", testAccessSecret, time.Minute, testIssuer)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := utils.ParseAndValidateJWT(tokenString, testAccessSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	tokenString, err := utils.GenerateJWT("user-123", testAccessSecret, time.Minute, testIssuer)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(tokenString, "some-other-secret")
	assert.Error(t, err)
}

// Tokens signed with the refresh secret must be rejected by the access-secret
// verifier and vice versa.
func TestValidateJWT_SecretIsolation(t *testing.T) {
	accessToken, err := utils.GenerateJWT("user-123", testAccessSecret, time.Minute, testIssuer)
	require.NoError(t, err)
	refreshToken, err := utils.GenerateJWT("user-123", testRefreshSecret, time.Minute, testIssuer)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(accessToken, testRefreshSecret)
	assert.Error(t, err)

	_, err = utils.ParseAndValidateJWT(refreshToken, testAccessSecret)
	assert.Error(t, err)
}

// An elapsed token must be rejected regardless of signature validity.
func TestValidateJWT_Expired(t *testing.T) {
	tokenString, err := utils.GenerateJWT("user-123", testAccessSecret, -time.Minute, testIssuer)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(tokenString, testAccessSecret)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestValidateJWT_Malformed(t *testing.T) {
	_, err := utils.ParseAndValidateJWT("not-a-jwt", testAccessSecret)
	assert.Error(t, err)
}

// A token signed with an asymmetric method must not pass the HMAC check even
// if its payload looks right.
func TestValidateJWT_RejectsNonHMACSigningMethod(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(tokenString, testAccessSecret)
	assert.Error(t, err)
}
