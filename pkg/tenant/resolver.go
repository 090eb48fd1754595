package tenant

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/trasealla/crm-api/pkg/auth"
)

// Strategy resolves a tenant id from one source on the request.
// Returning 0 means the source yielded nothing and the next strategy in the
// chain should be tried. Malformed input is "nothing", never an error.
type Strategy interface {
	Resolve(ctx context.Context, r *http.Request) (int64, error)
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc func(ctx context.Context, r *http.Request) (int64, error)

func (f StrategyFunc) Resolve(ctx context.Context, r *http.Request) (int64, error) {
	return f(ctx, r)
}

// DefaultHeader is the custom header carrying an explicit tenant id.
const DefaultHeader = "X-Tenant-Id"

// DefaultQueryParam is the query parameter carrying an explicit tenant id.
const DefaultQueryParam = "tenant_id"

// CallerTenant resolves the caller's home tenant id from the authenticated
// identity. This is the highest-priority source for regular callers: when a
// caller belongs to a tenant, host and header hints are never consulted.
func CallerTenant() Strategy {
	return StrategyFunc(func(ctx context.Context, _ *http.Request) (int64, error) {
		caller, ok := auth.CallerFromContext(ctx)
		if !ok {
			return 0, nil
		}
		return caller.TenantID, nil
	})
}

// Subdomain resolves a tenant id by looking up the request's subdomain.
// Only tenants with status "active" resolve through this path.
func Subdomain(store Store) Strategy {
	return StrategyFunc(func(ctx context.Context, r *http.Request) (int64, error) {
		sub := ExtractSubdomain(r.Host)
		if sub == "" {
			return 0, nil
		}
		return store.FindIDBySubdomain(ctx, sub)
	})
}

// Header resolves a tenant id from a request header holding an integer.
func Header(name string) Strategy {
	if name == "" {
		name = DefaultHeader
	}
	return StrategyFunc(func(_ context.Context, r *http.Request) (int64, error) {
		return parseID(r.Header.Get(name)), nil
	})
}

// QueryParam resolves a tenant id from a query parameter holding an integer.
func QueryParam(name string) Strategy {
	if name == "" {
		name = DefaultQueryParam
	}
	return StrategyFunc(func(_ context.Context, r *http.Request) (int64, error) {
		return parseID(r.URL.Query().Get(name)), nil
	})
}

// DefaultStrategies is the production resolution order: the caller's home
// tenant, then subdomain, then the X-Tenant-Id header, then the tenant_id
// query parameter. First non-zero id wins; later sources are not consulted.
func DefaultStrategies(store Store) []Strategy {
	return []Strategy{
		CallerTenant(),
		Subdomain(store),
		Header(DefaultHeader),
		QueryParam(DefaultQueryParam),
	}
}

// resolveChain applies strategies in order and stops at the first non-zero id.
func resolveChain(ctx context.Context, r *http.Request, strategies []Strategy) (int64, error) {
	for _, s := range strategies {
		id, err := s.Resolve(ctx, r)
		if err != nil {
			return 0, err
		}
		if id != 0 {
			return id, nil
		}
	}
	return 0, nil
}

// reservedSubdomains are platform infrastructure labels, never customer tenants.
var reservedSubdomains = map[string]bool{
	"api": true,
	"www": true,
}

// ExtractSubdomain derives a candidate tenant subdomain from a host header.
// Hosts containing "localhost" never carry one, and at least three
// dot-separated labels are required (e.g. "acme.crm.trasealla.com" yields
// "acme" while "trasealla.com" yields nothing). Reserved labels are excluded.
func ExtractSubdomain(host string) string {
	if host == "" {
		return ""
	}

	// Strip port if present.
	host, _, _ = strings.Cut(host, ":")

	if strings.Contains(host, "localhost") {
		return ""
	}

	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return ""
	}

	sub := parts[0]
	if reservedSubdomains[sub] {
		return ""
	}
	return sub
}

// parseID converts an explicit tenant id value; malformed input is treated
// as absent so resolution can fall through to later sources. Out-of-range ids
// still resolve and fail validation with a 404, matching the deployed API.
func parseID(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
