package tenant

import "errors"

var (
	// ErrTenantNotFound is returned when a resolved tenant id has no row.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrNoActiveSubscription is returned when a tenant has no subscription
	// row with status "active".
	ErrNoActiveSubscription = errors.New("no active subscription")
)
