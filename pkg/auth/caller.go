package auth

// Permissions holds the platform-level permission flags of a caller.
type Permissions struct {
	// PlatformOwner marks platform super admins, who bypass tenant
	// isolation entirely.
	PlatformOwner bool `json:"platform_owner"`
}

// Caller is the authenticated identity attached to a request. TenantID is
// the caller's home tenant; 0 means the caller has none (platform staff,
// integration tokens).
type Caller struct {
	ID          int64       `json:"id"`
	TenantID    int64       `json:"tenant_id,omitempty"`
	Permissions Permissions `json:"permissions"`
}

// IsPlatformOwner reports whether the caller holds the platform-owner flag.
func (c Caller) IsPlatformOwner() bool {
	return c.Permissions.PlatformOwner
}
