package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the registered JWT claims plus the application fields needed to
// reconstruct the caller without a database round trip.
type Claims struct {
	jwt.RegisteredClaims
	UserID      int64       `json:"uid"`
	TenantID    int64       `json:"tenant_id,omitempty"`
	Permissions Permissions `json:"permissions"`
}

// GenerateToken signs an HS256 token carrying the caller identity.
func GenerateToken(secret string, caller Caller, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(caller.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:      caller.ID,
		TenantID:    caller.TenantID,
		Permissions: caller.Permissions,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token signature and expiry and returns the caller
// encoded in its claims.
func ParseToken(secret, tokenString string) (Caller, error) {
	if secret == "" {
		return Caller{}, ErrEmptySecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Caller{}, errors.Join(ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Caller{}, ErrInvalidToken
	}
	return Caller{
		ID:          claims.UserID,
		TenantID:    claims.TenantID,
		Permissions: claims.Permissions,
	}, nil
}
