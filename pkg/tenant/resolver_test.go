package tenant_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trasealla/crm-api/pkg/auth"
	"github.com/trasealla/crm-api/pkg/tenant"
)

func TestExtractSubdomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		want string
	}{
		{"acme.crm.example.com", "acme"},
		{"acme.crm.example.com:8443", "acme"},
		{"api.example.com", ""},
		{"www.example.com", ""},
		{"api.crm.example.com", ""},
		{"www.crm.example.com", ""},
		{"localhost", ""},
		{"localhost:3000", ""},
		{"acme.app.localhost:3000", ""},
		{"example.com", ""},
		{"com", ""},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.host, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tenant.ExtractSubdomain(tt.host))
		})
	}
}

func TestHeaderStrategy(t *testing.T) {
	t.Parallel()

	t.Run("parses integer header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Tenant-Id", "42")

		id, err := tenant.Header("").Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("malformed header is absent", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Tenant-Id", "abc")

		id, err := tenant.Header("").Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Zero(t, id)
	})

	t.Run("missing header is absent", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/test", nil)

		id, err := tenant.Header("").Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Zero(t, id)
	})
}

func TestQueryParamStrategy(t *testing.T) {
	t.Parallel()

	t.Run("parses integer param", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/test?tenant_id=7", nil)

		id, err := tenant.QueryParam("").Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("malformed param is absent", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/test?tenant_id=seven", nil)

		id, err := tenant.QueryParam("").Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Zero(t, id)
	})
}

func TestCallerTenantStrategy(t *testing.T) {
	t.Parallel()

	t.Run("returns home tenant id", func(t *testing.T) {
		t.Parallel()

		ctx := auth.WithCaller(context.Background(), auth.Caller{ID: 1, TenantID: 9})
		req := httptest.NewRequest("GET", "/test", nil)

		id, err := tenant.CallerTenant().Resolve(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(9), id)
	})

	t.Run("no caller yields nothing", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/test", nil)

		id, err := tenant.CallerTenant().Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Zero(t, id)
	})
}

func TestSubdomainStrategy(t *testing.T) {
	t.Parallel()

	t.Run("resolves active tenant by subdomain", func(t *testing.T) {
		t.Parallel()

		store := newMockStore()
		store.subdomains["acme"] = 3

		req := httptest.NewRequest("GET", "/test", nil)
		req.Host = "acme.crm.example.com"

		id, err := tenant.Subdomain(store).Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("unknown subdomain yields nothing", func(t *testing.T) {
		t.Parallel()

		store := newMockStore()
		req := httptest.NewRequest("GET", "/test", nil)
		req.Host = "ghost.crm.example.com"

		id, err := tenant.Subdomain(store).Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Zero(t, id)
	})

	t.Run("reserved subdomain skips lookup", func(t *testing.T) {
		t.Parallel()

		store := newMockStore()
		store.subdomains["api"] = 3

		req := httptest.NewRequest("GET", "/test", nil)
		req.Host = "api.crm.example.com"

		id, err := tenant.Subdomain(store).Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Zero(t, id)
		assert.Zero(t, store.subdomainCalls)
	})
}
