package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgx connection behaviour the store needs.
// Satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGStore implements Store on top of PostgreSQL.
type PGStore struct {
	db Querier
}

// NewPGStore creates a PostgreSQL-backed tenant store.
func NewPGStore(db Querier) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) FindIDBySubdomain(ctx context.Context, subdomain string) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx,
		`SELECT id FROM tenants WHERE subdomain = $1 AND status = 'active'`,
		subdomain,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("tenant: find by subdomain: %w", err)
	}
	return id, nil
}

func (s *PGStore) GetWithSubscription(ctx context.Context, id int64) (*Record, error) {
	var (
		rec      Record
		features []byte
	)
	err := s.db.QueryRow(ctx,
		`SELECT t.id, COALESCE(t.subdomain, ''), t.status, t.trial_ends_at,
		        COALESCE(s.plan, ''), COALESCE(s.max_users, 0),
		        COALESCE(s.current_users, 0), COALESCE(s.status, ''), s.features
		 FROM tenants t
		 LEFT JOIN subscriptions s ON s.tenant_id = t.id
		 WHERE t.id = $1`,
		id,
	).Scan(&rec.ID, &rec.Subdomain, &rec.Status, &rec.TrialEndsAt,
		&rec.Plan, &rec.MaxUsers, &rec.CurrentUsers, &rec.SubscriptionStatus, &features)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("tenant: get with subscription: %w", err)
	}

	if rec.Features, err = ParseFeatureSet(features); err != nil {
		return nil, fmt.Errorf("tenant %d: %w", id, err)
	}
	return &rec, nil
}

func (s *PGStore) ActiveSubscription(ctx context.Context, tenantID int64) (*Subscription, error) {
	var (
		sub      Subscription
		features []byte
	)
	err := s.db.QueryRow(ctx,
		`SELECT plan, max_users, current_users, features
		 FROM subscriptions
		 WHERE tenant_id = $1 AND status = 'active'`,
		tenantID,
	).Scan(&sub.Plan, &sub.MaxUsers, &sub.CurrentUsers, &features)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActiveSubscription
		}
		return nil, fmt.Errorf("tenant: active subscription: %w", err)
	}

	if sub.Features, err = ParseFeatureSet(features); err != nil {
		return nil, fmt.Errorf("tenant %d: %w", tenantID, err)
	}
	return &sub, nil
}
