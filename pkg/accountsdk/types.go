package accountsdk

import "time"

// ErrorResponse is the error envelope every endpoint uses.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// UserResponse is the public shape of a user. Password hashes never leave
// the server.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	OrgID     string    `json:"org_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest authenticates an existing user.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse carries a signed session token plus the authenticated
// user.
type SessionResponse struct {
	// Token is the bearer token for subsequent requests
	Token string `json:"token"`

	User UserResponse `json:"user"`
}

// RegisterRequest redeems an invitation. Token and Email must match the
// pair the invitation was minted for.
type RegisterRequest struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// BootstrapRequest seeds a fresh deployment with its first organization
// and admin. AdminPassword is optional; when omitted the server generates
// one and returns it exactly once.
type BootstrapRequest struct {
	OrgName        string `json:"org_name"`
	AdminEmail     string `json:"admin_email"`
	AdminFirstName string `json:"admin_first_name"`
	AdminLastName  string `json:"admin_last_name"`
	AdminPassword  string `json:"admin_password,omitempty"`
}

// BootstrapResponse returns the created admin. GeneratedPassword is only
// set when the request omitted a password.
type BootstrapResponse struct {
	User              UserResponse `json:"user"`
	GeneratedPassword string       `json:"generated_password,omitempty"`
}

// OrgResponse is the public shape of an organization.
type OrgResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateOrgRequest renames the organization.
type UpdateOrgRequest struct {
	Name string `json:"name"`
}

// MembersResponse lists an org's members, oldest first.
type MembersResponse struct {
	Members []UserResponse `json:"members"`
}

// ChangeRoleRequest sets a member's role.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// InvitationResponse is the public shape of an invitation. The token is
// deliberately absent: it only ever travels in the invitation email.
type InvitationResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	OrgID     string    `json:"org_id"`
	ExpiresAt time.Time `json:"expires_at"`
	Accepted  bool      `json:"accepted"`
	CreatedAt time.Time `json:"created_at"`
}

// InvitationsResponse lists an org's invitations, oldest first.
type InvitationsResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}

// CreateInvitationRequest invites an email address into the caller's org.
type CreateInvitationRequest struct {
	Email string `json:"email"`
}

// ConnectionRequest configures the org's integration connection.
type ConnectionRequest struct {
	ConnectionType string `json:"connection_type"`
	BaseURL        string `json:"base_url"`
	APIKey         string `json:"api_key"`
	APISecret      string `json:"api_secret"`
}

// ConnectionResponse is the public shape of a connection. The API secret
// is write-only.
type ConnectionResponse struct {
	ID             string    `json:"id"`
	ConnectionType string    `json:"connection_type"`
	BaseURL        string    `json:"base_url"`
	APIKey         string    `json:"api_key"`
	OrgID          string    `json:"org_id"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HealthResponse is returned by the liveness and readiness endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}
