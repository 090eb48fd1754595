package tenant

import (
	"context"
	"time"
)

// Status is the lifecycle state of a tenant account.
type Status string

const (
	StatusActive    Status = "active"
	StatusTrial     Status = "trial"
	StatusSuspended Status = "suspended"
	StatusCancelled Status = "cancelled"
)

// Record is a tenant joined with its subscription row. Subscription columns
// are zero-valued when the tenant has no subscription (LEFT JOIN semantics).
type Record struct {
	ID                 int64      `json:"id"`
	Subdomain          string     `json:"subdomain,omitempty"`
	Status             Status     `json:"status"`
	TrialEndsAt        *time.Time `json:"trial_ends_at,omitempty"`
	Plan               string     `json:"plan,omitempty"`
	MaxUsers           int        `json:"max_users,omitempty"`
	CurrentUsers       int        `json:"current_users,omitempty"`
	SubscriptionStatus string     `json:"subscription_status,omitempty"`
	Features           FeatureSet `json:"features,omitempty"`
}

// IsTrialExpired reports whether the tenant is on a trial that ended before now.
// Tenants without a trial deadline never expire.
func (r *Record) IsTrialExpired(now time.Time) bool {
	if r.Status != StatusTrial || r.TrialEndsAt == nil {
		return false
	}
	return r.TrialEndsAt.Before(now)
}

// Subscription holds the entitlement-relevant columns of an active
// subscription row, used by the seat-limit and feature gates.
type Subscription struct {
	Plan         string     `json:"plan"`
	MaxUsers     int        `json:"max_users"`
	CurrentUsers int        `json:"current_users"`
	Features     FeatureSet `json:"features,omitempty"`
}

// Store loads tenant and subscription data. Implementations must only read;
// the gates never mutate tenant state.
type Store interface {
	// FindIDBySubdomain returns the id of the active tenant owning the
	// subdomain, or 0 when no active tenant matches. Tenants in any other
	// lifecycle state do not resolve via subdomain.
	FindIDBySubdomain(ctx context.Context, subdomain string) (int64, error)

	// GetWithSubscription returns the tenant joined with its subscription.
	// Returns ErrTenantNotFound when the tenant row does not exist.
	GetWithSubscription(ctx context.Context, id int64) (*Record, error)

	// ActiveSubscription returns the tenant's subscription with status
	// "active". Returns ErrNoActiveSubscription when none exists.
	ActiveSubscription(ctx context.Context, tenantID int64) (*Subscription, error)
}
