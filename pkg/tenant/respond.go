package tenant

import (
	"encoding/json"
	"net/http"
)

// rejection is the wire shape of every gate failure. The deployed web and
// mobile clients key off the "success" flag and the exact message strings,
// so both are preserved verbatim.
type rejection struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func reject(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(rejection{Success: false, Message: message})
}

// Messages returned by the gates. Changing any of these is a breaking change
// for deployed clients.
const (
	MsgTenantNotFound   = "Tenant not found"
	MsgAccountSuspended = "Account suspended. Please contact support."
	MsgAccountCancelled = "Account cancelled."
	MsgTrialExpired     = "Trial period expired. Please upgrade to continue."
	MsgTenantRequired   = "Tenant context required"
	MsgNoSubscription   = "No active subscription"
)
