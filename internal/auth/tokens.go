package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the admin capability token payload. There is exactly one
// shared admin identity, so the token carries a role and nothing else.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const issuer = "abi-fashion-backend"

var ErrInvalidToken = errors.New("invalid admin token")

// IssueAdminToken mints the short-lived capability token handed out on
// successful password validation. Every privileged endpoint requires it.
func IssueAdminToken(secret string, ttl time.Duration) (string, time.Time, error) {
	if len(secret) < 32 {
		return "", time.Time{}, fmt.Errorf("ADMIN_TOKEN_SECRET must be at least 32 characters")
	}

	now := time.Now()
	exp := now.Add(ttl)
	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign admin token: %w", err)
	}

	return signed, exp, nil
}

// ParseAdminToken validates signature, expiry and role.
func ParseAdminToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != "admin" || claims.Issuer != issuer {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
