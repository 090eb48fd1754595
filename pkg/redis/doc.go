// Package redis connects the service to Redis, which backs the shared
// tenant-record cache when enabled. Connection retries and a readiness probe
// are included so the cache being optional never blocks startup logic.
package redis
