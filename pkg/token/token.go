package token

import (
	"errors"
	"fmt"
	"time"

	"food-ordering/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Service issues and verifies signed identity tokens. Stateless: the
// signing secret is fixed at construction and never mutated.
type Service interface {
	Sign(userID uuid.UUID) (string, error)
	Verify(tokenString string) (uuid.UUID, error)
}

type jwtService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time // injectable for testing
}

type claims struct {
	jwt.RegisteredClaims
}

func NewService(config utils.JWTConfig) Service {
	return &jwtService{
		secret: []byte(config.Secret),
		expiry: time.Duration(config.ExpiryHours) * time.Hour,
		now:    time.Now,
	}
}

// Sign creates an HS256 token whose subject is the user ID
func (s *jwtService) Sign(userID uuid.UUID) (string, error) {
	now := s.now()

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			ID:        uuid.New().String(),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token for user %s: %w", userID.String(), err)
	}

	return signed, nil
}

// Verify parses and validates a token, returning the user ID it was issued for
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&claims{},
		func(t *jwt.Token) (interface{}, error) {
			// Only HMAC is ever issued, reject anything else
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrExpiredToken
		}
		return uuid.Nil, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
