package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the dashboard token claims. Subject identifies the operator
// the token was minted for.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTService mints and validates dashboard tokens against a shared
// secret. There are no user accounts; a valid token grants full read
// access to the dashboard routes.
type JWTService struct {
	secret          string
	expirationHours int
}

// NewJWTService creates a JWT service. An empty secret disables token
// validation entirely; every token is rejected.
func NewJWTService(secret string, expirationHours int) *JWTService {
	if expirationHours < 1 {
		expirationHours = 24
	}
	return &JWTService{secret: secret, expirationHours: expirationHours}
}

// GenerateToken mints a dashboard token for the given subject.
func (s *JWTService) GenerateToken(subject string) (string, error) {
	if s.secret == "" {
		return "", fmt.Errorf("JWT secret is not configured")
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a token, returning its subject.
func (s *JWTService) ValidateToken(tokenString string) (string, error) {
	if s.secret == "" {
		return "", fmt.Errorf("JWT secret is not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.Subject, nil
}
