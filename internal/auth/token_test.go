package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EnesKotay/Fitness-App/internal/user"
)

func testUser() user.User {
	return user.User{ID: 42, Email: "ava@test.com", Name: "Ava"}
}

func TestIssueAndVerifyRoundtrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	userID, err := svc.VerifyHeader("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestIssueClaims(t *testing.T) {
	svc := NewTokenService("test-secret", 24*time.Hour)
	issued := time.Date(2026, 1, 26, 12, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return issued })

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return issued }))
	require.NoError(t, err)

	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "fitness-backend", claims.Issuer)
	assert.Equal(t, "ava@test.com", claims.Email)
	assert.Equal(t, "Ava", claims.Name)
	assert.Equal(t, issued.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issued.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestVerifyHeaderExpired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	issued := time.Date(2026, 1, 26, 12, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return issued })

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	svc.WithClock(func() time.Time { return issued.Add(2 * time.Hour) })

	_, err = svc.VerifyHeader("Bearer " + token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyHeaderTampered(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	_, err = svc.VerifyHeader("Bearer " + token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyHeaderWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.VerifyHeader("Bearer " + token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyHeaderMissingBearer(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	cases := []string{
		"",
		"Bearer",
		"Bearer ",
		"bearer " + token,
		token,
		"Basic dXNlcjpwYXNz",
	}
	for _, header := range cases {
		_, err := svc.VerifyHeader(header)
		assert.ErrorIs(t, err, ErrMissingBearer, "header %q", header)
	}
}

func TestVerifyHeaderRejectsUnsignedToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "42"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.VerifyHeader("Bearer " + token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyHeaderNonNumericSubject(t *testing.T) {
	secret := []byte("test-secret")
	svc := NewTokenService(string(secret), time.Hour)

	for _, sub := range []string{"", "abc", "42abc"} {
		claims := jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
		require.NoError(t, err)

		_, err = svc.VerifyHeader("Bearer " + token)
		assert.ErrorIs(t, err, ErrMalformedSubject, "subject %q", sub)
	}
}

func TestNewTokenServiceDefaults(t *testing.T) {
	issuer := NewTokenService("", 0)
	verifier := NewTokenService("fitness-backend-jwt-secret-key-at-least-32-bytes-long", 24*time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	userID, err := verifier.VerifyHeader("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}
