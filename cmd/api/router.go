package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/trasealla/crm-api/pkg/auth"
	"github.com/trasealla/crm-api/pkg/httpserver"
	"github.com/trasealla/crm-api/pkg/requestid"
	"github.com/trasealla/crm-api/pkg/tenant"
)

type routerDeps struct {
	log       *slog.Logger
	store     tenant.Store
	cache     tenant.Cache
	cacheTTL  time.Duration
	jwtSecret string
	probes    []func(context.Context) error
}

func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(deps.log, deps.probes...))

	resolveOpts := []tenant.Option{}
	if deps.cache != nil {
		resolveOpts = append(resolveOpts, tenant.WithCache(deps.cache, deps.cacheTTL))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(deps.jwtSecret))
		r.Use(tenant.Resolve(deps.store, resolveOpts...))

		r.With(tenant.RequireTenant).Get("/tenant", currentTenant)

		// Resource routers (accounts, contacts, leads, deals, ...) mount
		// here behind the same gates, e.g.:
		//
		//	r.With(tenant.RequireTenant).Mount("/accounts", accounts.Router(pool))
		//	r.With(tenant.RequireTenant, tenant.CheckFeature(deps.store, "reporting")).
		//		Mount("/reports", reports.Router(pool))
	})

	return r
}

// currentTenant exposes the resolved tenant context, used by the web client
// to render account state and by operators to debug resolution.
func currentTenant(w http.ResponseWriter, r *http.Request) {
	id, _ := tenant.IDFromContext(r.Context())
	rec, _ := tenant.FromContext(r.Context())

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"data": map[string]any{
			"tenant_id": id,
			"tenant":    rec,
		},
	})
}
