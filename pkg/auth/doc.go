// Package auth authenticates API requests and carries the caller identity
// through the request context.
//
// The caller is encoded in an HS256 JWT issued at login (token issuance
// lives in the accounts service; this package only validates). Claims carry
// the user id, the caller's home tenant id, and the platform permission
// flags, so downstream middleware never needs a database lookup to know who
// is calling.
//
//	r.Use(auth.Middleware(cfg.JWTSecret))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		caller, ok := auth.CallerFromContext(r.Context())
//		...
//	}
package auth
