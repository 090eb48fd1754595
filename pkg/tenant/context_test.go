package tenant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trasealla/crm-api/pkg/tenant"
)

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("empty context has no tenant", func(t *testing.T) {
		t.Parallel()

		_, ok := tenant.IDFromContext(context.Background())
		assert.False(t, ok)
		_, ok = tenant.FromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("bare id carries no record", func(t *testing.T) {
		t.Parallel()

		ctx := tenant.WithID(context.Background(), 42)

		id, ok := tenant.IDFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, int64(42), id)

		_, ok = tenant.FromContext(ctx)
		assert.False(t, ok)
	})

	t.Run("record carries its id", func(t *testing.T) {
		t.Parallel()

		rec := &tenant.Record{ID: 7, Status: tenant.StatusActive}
		ctx := tenant.WithRecord(context.Background(), rec)

		id, ok := tenant.IDFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, int64(7), id)

		got, ok := tenant.FromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, rec, got)
	})

	t.Run("logger extractor emits tenant id", func(t *testing.T) {
		t.Parallel()

		extract := tenant.LoggerExtractor()

		_, ok := extract(context.Background())
		assert.False(t, ok)

		attr, ok := extract(tenant.WithID(context.Background(), 7))
		require.True(t, ok)
		assert.Equal(t, "tenant_id", attr.Key)
		assert.Equal(t, int64(7), attr.Value.Int64())
	})
}
