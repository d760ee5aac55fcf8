package token

import (
	"testing"
	"time"

	"food-ordering/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string, expiry time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret: []byte(secret),
		expiry: expiry,
		now:    now,
	}
}

func TestSignAndVerify(t *testing.T) {
	userID := uuid.New()
	svc := NewService(utils.JWTConfig{Secret: "test-secret-for-token-service", ExpiryHours: 24})

	tokenString, err := svc.Sign(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	got, err := svc.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerify_WrongSecret(t *testing.T) {
	userID := uuid.New()
	signer := NewService(utils.JWTConfig{Secret: "secret-one", ExpiryHours: 24})
	verifier := NewService(utils.JWTConfig{Secret: "secret-two", ExpiryHours: 24})

	tokenString, err := signer.Sign(userID)
	require.NoError(t, err)

	_, err = verifier.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	userID := uuid.New()
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	signer := newTestService("test-secret", time.Hour, func() time.Time { return issuedAt })
	tokenString, err := signer.Sign(userID)
	require.NoError(t, err)

	// Verify two hours later, past the one hour expiry
	verifier := newTestService("test-secret", time.Hour, func() time.Time {
		return issuedAt.Add(2 * time.Hour)
	})

	_, err = verifier.Verify(tokenString)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerify_Garbage(t *testing.T) {
	svc := NewService(utils.JWTConfig{Secret: "test-secret", ExpiryHours: 24})

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
