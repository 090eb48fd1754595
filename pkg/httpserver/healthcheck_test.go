package httpserver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trasealla/crm-api/pkg/httpserver"
)

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	serve := func(handler http.HandlerFunc) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest("GET", "/health", nil))
		return w
	}

	t.Run("liveness without dependencies", func(t *testing.T) {
		t.Parallel()

		w := serve(httpserver.HealthCheckHandler(log))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ALIVE", w.Body.String())
	})

	t.Run("ready when all dependencies pass", func(t *testing.T) {
		t.Parallel()

		ok := func(context.Context) error { return nil }
		w := serve(httpserver.HealthCheckHandler(log, ok, ok))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("not ready when a dependency fails", func(t *testing.T) {
		t.Parallel()

		ok := func(context.Context) error { return nil }
		fail := func(context.Context) error { return errors.New("db down") }
		w := serve(httpserver.HealthCheckHandler(log, ok, fail))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "NOT_READY", w.Body.String())
	})
}
