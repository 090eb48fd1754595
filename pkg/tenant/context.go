package tenant

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// ctxValue carries the per-request tenant outcome. The id may be set without
// a record (platform-owner override path); a record always implies its id.
type ctxValue struct {
	id  int64
	rec *Record
}

// WithID attaches a bare tenant id to the context without a validated record.
// Used for the platform-owner override, which is deliberately unvalidated.
func WithID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, contextKey{}, ctxValue{id: id})
}

// WithRecord attaches a validated tenant record (and its id) to the context.
func WithRecord(ctx context.Context, rec *Record) context.Context {
	return context.WithValue(ctx, contextKey{}, ctxValue{id: rec.ID, rec: rec})
}

// IDFromContext returns the resolved tenant id.
// Returns 0, false when no tenant was resolved for this request.
func IDFromContext(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(contextKey{}).(ctxValue)
	if !ok || v.id == 0 {
		return 0, false
	}
	return v.id, true
}

// FromContext returns the validated tenant record.
// Returns nil, false when resolution did not produce one (including the
// platform-owner override path, which never loads a record).
func FromContext(ctx context.Context) (*Record, bool) {
	v, ok := ctx.Value(contextKey{}).(ctxValue)
	if !ok || v.rec == nil {
		return nil, false
	}
	return v.rec, true
}

// LoggerExtractor returns a logger context extractor that annotates every log
// record with the resolved tenant id.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := IDFromContext(ctx); ok {
			return slog.Int64("tenant_id", id), true
		}
		return slog.Attr{}, false
	}
}
