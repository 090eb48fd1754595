package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trasealla/crm-api/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	serve := func(t *testing.T, inbound string) (*httptest.ResponseRecorder, string) {
		t.Helper()
		var inContext string
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inContext = requestid.FromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))
		req := httptest.NewRequest("GET", "/test", nil)
		if inbound != "" {
			req.Header.Set(requestid.Header, inbound)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w, inContext
	}

	t.Run("generates id when absent", func(t *testing.T) {
		t.Parallel()

		w, id := serve(t, "")
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Header().Get(requestid.Header))
	})

	t.Run("propagates valid inbound id", func(t *testing.T) {
		t.Parallel()

		w, id := serve(t, "abc-123_DEF")
		assert.Equal(t, "abc-123_DEF", id)
		assert.Equal(t, "abc-123_DEF", w.Header().Get(requestid.Header))
	})

	t.Run("replaces malformed inbound id", func(t *testing.T) {
		t.Parallel()

		_, id := serve(t, "bad id with spaces!")
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("replaces oversized inbound id", func(t *testing.T) {
		t.Parallel()

		_, id := serve(t, strings.Repeat("a", 200))
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})
}
