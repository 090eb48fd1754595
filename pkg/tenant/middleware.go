package tenant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/trasealla/crm-api/pkg/auth"
)

// maxOverrideBody caps how much of a request body is buffered while looking
// for a platform-owner tenant override.
const maxOverrideBody = 1 << 20

// Resolve creates the tenant resolution middleware. It determines the
// effective tenant for the request, validates the tenant's lifecycle state,
// and attaches the outcome to the request context.
//
// Platform owners bypass resolution entirely: an explicit tenant_id override
// (query parameter or JSON body field) is trusted verbatim with no lookup.
// This is a reviewed, intentional escape hatch for administrative tooling
// that operates across tenants; do not add validation here.
//
// For everyone else the strategies run in order (caller's home tenant,
// subdomain, header, query parameter) and the first id wins. A resolved id
// is then confirmed against the store: missing tenants get 404, suspended
// and cancelled accounts 403, and expired trials 403. Requests that resolve
// no tenant at all pass through without tenant context; downstream gates
// decide whether that is acceptable.
func Resolve(store Store, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		strategies:   DefaultStrategies(store),
		errorHandler: defaultErrorHandler,
		cacheTTL:     5 * time.Minute,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if auth.IsPlatformOwner(ctx) {
				if id := overrideID(r); id != 0 {
					r = r.WithContext(WithID(ctx, id))
				}
				next.ServeHTTP(w, r)
				return
			}

			id, err := resolveChain(ctx, r, cfg.strategies)
			if err != nil {
				cfg.errorHandler(w, r, err)
				return
			}
			if id == 0 {
				next.ServeHTTP(w, r)
				return
			}

			rec, err := cfg.lookup(ctx, store, id)
			if err != nil {
				if errors.Is(err, ErrTenantNotFound) {
					reject(w, http.StatusNotFound, MsgTenantNotFound)
					return
				}
				cfg.errorHandler(w, r, err)
				return
			}

			switch {
			case rec.Status == StatusSuspended:
				reject(w, http.StatusForbidden, MsgAccountSuspended)
			case rec.Status == StatusCancelled:
				reject(w, http.StatusForbidden, MsgAccountCancelled)
			case rec.IsTrialExpired(cfg.now()):
				reject(w, http.StatusForbidden, MsgTrialExpired)
			default:
				next.ServeHTTP(w, r.WithContext(WithRecord(ctx, rec)))
			}
		})
	}
}

// lookup fetches the joined tenant record, going through the cache when one
// is configured.
func (c *config) lookup(ctx context.Context, store Store, id int64) (*Record, error) {
	if c.cache == nil {
		return store.GetWithSubscription(ctx, id)
	}

	key := strconv.FormatInt(id, 10)
	if rec, ok := c.cache.Get(ctx, key); ok {
		return rec, nil
	}

	rec, err := store.GetWithSubscription(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.Set(ctx, key, rec, c.cacheTTL)
	return rec, nil
}

// RequireTenant rejects requests that carry no tenant context, unless the
// caller is a platform owner. Pure and synchronous; mount it on routes that
// cannot operate without tenant scoping.
func RequireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if _, ok := IDFromContext(ctx); !ok && !auth.IsPlatformOwner(ctx) {
			reject(w, http.StatusBadRequest, MsgTenantRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CheckUserLimit rejects requests for tenants whose active subscription has
// exhausted its seat ceiling. Enforcement is opportunistic: requests without
// tenant context, and tenants without an active subscription row, pass.
func CheckUserLimit(store Store, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{errorHandler: defaultErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IDFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			sub, err := store.ActiveSubscription(r.Context(), id)
			if err != nil {
				if errors.Is(err, ErrNoActiveSubscription) {
					next.ServeHTTP(w, r)
					return
				}
				cfg.errorHandler(w, r, err)
				return
			}

			if sub.CurrentUsers >= sub.MaxUsers {
				reject(w, http.StatusForbidden,
					fmt.Sprintf("User limit reached (%d). Please upgrade your plan.", sub.MaxUsers))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CheckFeature gates a route on a named plan feature. Platform owners always
// pass. Everyone else needs tenant context and an active subscription whose
// feature set enables the feature, either directly or via the wildcard.
func CheckFeature(store Store, feature string, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{errorHandler: defaultErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if auth.IsPlatformOwner(ctx) {
				next.ServeHTTP(w, r)
				return
			}

			id, ok := IDFromContext(ctx)
			if !ok {
				reject(w, http.StatusBadRequest, MsgTenantRequired)
				return
			}

			sub, err := store.ActiveSubscription(ctx, id)
			if err != nil {
				if errors.Is(err, ErrNoActiveSubscription) {
					reject(w, http.StatusForbidden, MsgNoSubscription)
					return
				}
				cfg.errorHandler(w, r, err)
				return
			}

			if !sub.Features.Enabled(feature) {
				reject(w, http.StatusForbidden,
					fmt.Sprintf("Feature '%s' is not available in your plan. Please upgrade.", feature))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// overrideID extracts the platform-owner tenant override: the tenant_id
// query parameter, else a tenant_id field in a JSON body. The body is
// buffered and restored so downstream handlers can still read it.
func overrideID(r *http.Request) int64 {
	if id := parseID(r.URL.Query().Get(DefaultQueryParam)); id != 0 {
		return id
	}

	if r.Body == nil || r.Body == http.NoBody {
		return 0
	}
	if ct := r.Header.Get("Content-Type"); !strings.Contains(ct, "json") {
		return 0
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxOverrideBody))
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return 0
	}

	var fields struct {
		TenantID any `json:"tenant_id"`
	}
	if err := json.Unmarshal(body, &fields); err != nil {
		return 0
	}

	switch v := fields.TenantID.(type) {
	case float64:
		return int64(v)
	case string:
		return parseID(v)
	default:
		return 0
	}
}
