// Package pg bootstraps the PostgreSQL layer: a pgx/v5 connection pool with
// startup retries, goose schema migrations, and a readiness probe. The
// tenant store and resource repositories build on the pool directly.
package pg
