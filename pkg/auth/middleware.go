package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// Middleware validates the Bearer token on every request and attaches the
// caller identity to the context. It runs before tenant resolution, which
// reads the caller's home tenant and platform-owner flag from the context.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := TokenFromRequest(r)
			if err != nil {
				if errors.Is(err, ErrMissingToken) {
					unauthorized(w, "Authentication required")
					return
				}
				unauthorized(w, "Invalid or expired token")
				return
			}

			caller, err := ParseToken(secret, token)
			if err != nil {
				unauthorized(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

// TokenFromRequest extracts the Bearer token from the Authorization header.
// Returns ErrMissingToken when the header is absent, uses another scheme, or
// carries an empty token.
func TokenFromRequest(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}
