package accountsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session is an authenticated handle on the accounts service. It carries
// the bearer token of one logged-in user.
type Session struct {
	client *SDKClient
	token  string
	user   UserResponse
}

func newSession(c *SDKClient, resp SessionResponse) *Session {
	return &Session{client: c, token: resp.Token, user: resp.User}
}

// Token returns the raw session token, e.g. for persisting across restarts.
func (s *Session) Token() string { return s.token }

// User returns the user this session was established for. The snapshot is
// from login time; role changes only show up after a fresh login.
func (s *Session) User() UserResponse { return s.user }

// ResumeSession rebuilds a Session from a previously obtained token.
func (c *SDKClient) ResumeSession(token string, user UserResponse) *Session {
	return &Session{client: c, token: token, user: user}
}

// Org returns the caller's organization.
func (s *Session) Org(ctx context.Context) (OrgResponse, error) {
	var resp OrgResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/org", s.token, nil, &resp)
	return resp, err
}

// RenameOrg changes the organization name. Admin only.
func (s *Session) RenameOrg(ctx context.Context, name string) (OrgResponse, error) {
	var resp OrgResponse
	err := s.client.do(ctx, http.MethodPatch, "/v1/org", s.token, UpdateOrgRequest{Name: name}, &resp)
	return resp, err
}

// Members lists the org's members. Admin only.
func (s *Session) Members(ctx context.Context) ([]UserResponse, error) {
	var resp MembersResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/org/members", s.token, nil, &resp)
	return resp.Members, err
}

// ChangeRole sets another member's role. Admin only, never on oneself.
func (s *Session) ChangeRole(ctx context.Context, userID, role string) error {
	path := "/v1/org/members/" + url.PathEscape(userID) + "/role"
	return s.client.do(ctx, http.MethodPatch, path, s.token, ChangeRoleRequest{Role: role}, nil)
}

// RemoveMember removes a member from the org. Admin only.
func (s *Session) RemoveMember(ctx context.Context, userID string) error {
	path := "/v1/org/members/" + url.PathEscape(userID)
	return s.client.do(ctx, http.MethodDelete, path, s.token, nil, nil)
}

// Invitations lists the org's invitations. Admin only.
func (s *Session) Invitations(ctx context.Context) ([]InvitationResponse, error) {
	var resp InvitationsResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/org/invitations", s.token, nil, &resp)
	return resp.Invitations, err
}

// Invite mints an invitation for an email address. Admin only.
func (s *Session) Invite(ctx context.Context, email string) (InvitationResponse, error) {
	var resp InvitationResponse
	err := s.client.do(ctx, http.MethodPost, "/v1/org/invitations", s.token,
		CreateInvitationRequest{Email: email}, &resp)
	return resp, err
}

// RevokeInvitation deletes a pending invitation. Admin only.
func (s *Session) RevokeInvitation(ctx context.Context, invitationID string) error {
	path := "/v1/org/invitations/" + url.PathEscape(invitationID)
	return s.client.do(ctx, http.MethodDelete, path, s.token, nil, nil)
}

// Connection returns the org's integration settings. Admin only.
func (s *Session) Connection(ctx context.Context) (ConnectionResponse, error) {
	var resp ConnectionResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/org/connection", s.token, nil, &resp)
	return resp, err
}

// SaveConnection creates or replaces the org's integration settings. Admin
// only.
func (s *Session) SaveConnection(ctx context.Context, req ConnectionRequest) (ConnectionResponse, error) {
	var resp ConnectionResponse
	err := s.client.do(ctx, http.MethodPut, "/v1/org/connection", s.token, req, &resp)
	return resp, err
}
