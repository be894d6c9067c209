package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for malformed, tampered or expired tokens
	ErrInvalidToken = errors.New("invalid token")
)

// Claims carries the user id inside a signed token
type Claims struct {
	ID uint `json:"id"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 bearer tokens
type TokenManager interface {
	Generate(userID uint) (string, error)
	Validate(tokenString string) (*Claims, error)
}

type jwtManager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenManager creates a token manager. An expiry of zero issues tokens without exp.
func NewTokenManager(secret string, expiry time.Duration) TokenManager {
	return &jwtManager{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Generate signs a token for the user
func (m *jwtManager) Generate(userID uint) (string, error) {
	now := m.now()
	claims := Claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatUint(uint64(userID), 10),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if m.expiry > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.expiry))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and expiry and returns the claims
func (m *jwtManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
