// Package tenant resolves and validates the tenant context for every API
// request and gates access based on the tenant's subscription.
//
// The package is built around three core concepts:
//
//  1. Strategies - extract a candidate tenant id from one request source
//     (authenticated caller, subdomain, header, query parameter)
//  2. Store - loads tenant and subscription rows from the database
//  3. Middleware - orchestrates resolution, lifecycle validation, and
//     context propagation, plus the entitlement gates layered on top
//
// # Resolution order
//
// Platform owners bypass resolution: an explicit tenant_id override is
// trusted verbatim with no lookup, so administrative tooling can operate
// across tenants. For regular callers the strategies run in a strict order
// and the first source that yields an id wins:
//
//  1. The caller's home tenant id from the authenticated identity
//  2. The request subdomain (active tenants only; "api", "www" and
//     localhost hosts never resolve)
//  3. The X-Tenant-Id header
//  4. The tenant_id query parameter
//
// A resolved id is untrusted until the tenant row is fetched and its
// lifecycle state checked: missing rows yield 404, suspended and cancelled
// accounts 403, and trials past their deadline 403. Requests that resolve
// nothing pass through without tenant context; RequireTenant decides
// downstream whether that is acceptable.
//
// # Usage
//
//	store := tenant.NewPGStore(pool)
//
//	r.Use(auth.Middleware(secret))
//	r.Use(tenant.Resolve(store))
//
//	r.Group(func(r chi.Router) {
//		r.Use(tenant.RequireTenant)
//		r.With(tenant.CheckFeature(store, "reporting")).Get("/reports", listReports)
//		r.With(tenant.CheckUserLimit(store)).Post("/staff", createStaff)
//	})
//
// # Gates
//
//   - RequireTenant: 400 when no tenant context is present
//   - CheckUserLimit: 403 when the active subscription's seat ceiling is
//     reached; passes open when no active subscription exists
//   - CheckFeature: 403 unless the active subscription enables the feature,
//     directly or via the "all" wildcard
//
// Every rejection is written as {"success":false,"message":"..."} with the
// exact message strings the deployed clients expect.
//
// # Caching
//
// Resolution can optionally go through a Cache (in-memory or Redis) for the
// validated tenant record. Lifecycle checks always run per request against
// the cached record, so an expiring trial is rejected on time regardless of
// the cache TTL. Caching is disabled unless WithCache is supplied.
package tenant
