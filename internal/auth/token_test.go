package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueCustomerToken("test-secret", "cust-1", "musteri@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseCustomerToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "cust-1", claims.CustomerID)
	assert.Equal(t, "musteri@example.com", claims.Email)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := IssueCustomerToken("secret-a", "cust-1", "musteri@example.com")
	require.NoError(t, err)

	claims, err := ParseCustomerToken("secret-b", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestParseGarbage(t *testing.T) {
	claims, err := ParseCustomerToken("secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestParseExpiredToken(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "cust-1",
		"email": "musteri@example.com",
		"iat":   time.Now().Add(-48 * time.Hour).Unix(),
		"exp":   time.Now().Add(-24 * time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseCustomerToken("secret", signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseMissingClaims(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "cust-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseCustomerToken("secret", signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEmptySecretRejectsForgedToken(t *testing.T) {
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "cust-1",
		"email": "kurban@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := forged.SignedString([]byte(""))
	require.NoError(t, err)

	claims, err := ParseCustomerToken("", signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestIssueRequiresSecret(t *testing.T) {
	token, err := IssueCustomerToken("", "cust-1", "musteri@example.com")
	assert.ErrorIs(t, err, ErrNoSecret)
	assert.Empty(t, token)
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":   "cust-1",
		"email": "musteri@example.com",
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseCustomerToken("secret", signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
