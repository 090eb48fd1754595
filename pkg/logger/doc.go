// Package logger builds the service's slog.Logger: JSON in production, text
// in development, with context extractors that stamp every request-scoped
// log record with the request id and resolved tenant id.
package logger
