package auth

import "errors"

var (
	// ErrMissingToken is returned when the Authorization header is absent
	// or not a Bearer token.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken is returned when a token fails signature or claims
	// validation.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrEmptySecret is returned when a signing secret is not configured.
	ErrEmptySecret = errors.New("jwt secret is required")
)
