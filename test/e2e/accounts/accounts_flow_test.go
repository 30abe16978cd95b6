package accounts_test

import (
	"testing"

	"github.com/dashdocs/dashdocs/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

// TestBootstrapLoginInviteRegister walks the happy path end to end:
// bootstrap a deployment, log in as the admin, invite a colleague, redeem
// the invitation and act as the new member.
func TestBootstrapLoginInviteRegister(t *testing.T) {
	client, sender := setupServer(t)
	admin := bootstrapOrg(t, client)

	// Bootstrap is one-shot
	_, err := client.Bootstrap(t.Context(), bootstrapToken, accountsdk.BootstrapRequest{
		OrgName:        "Second",
		AdminEmail:     "again@acme.test",
		AdminFirstName: "A",
		AdminLastName:  "B",
	})
	require.True(t, accountsdk.IsCode(err, accountsdk.ErrorCodeBootstrapDone))

	member := inviteAndRegister(t, client, admin, sender, "colleague@acme.test", "hunter22hunter")
	require.Equal(t, "member", member.User().Role)
	require.Equal(t, admin.User().OrgID, member.User().OrgID)

	// New members land signed in and can see their org
	org, err := member.Org(t.Context())
	require.NoError(t, err)
	require.Equal(t, "Acme", org.Name)

	// The invitation shows as accepted in the admin's list
	invitations, err := admin.Invitations(t.Context())
	require.NoError(t, err)
	require.Len(t, invitations, 1)
	require.True(t, invitations[0].Accepted)

	// And the member roster has grown to two
	members, err := admin.Members(t.Context())
	require.NoError(t, err)
	require.Len(t, members, 2)
}

func TestInvitationTokenSingleUse(t *testing.T) {
	client, sender := setupServer(t)
	admin := bootstrapOrg(t, client)

	_, err := admin.Invite(t.Context(), "onetime@acme.test")
	require.NoError(t, err)
	token := sender.lastToken(t)

	_, err = client.Register(t.Context(), accountsdk.RegisterRequest{
		Token:     token,
		Email:     "onetime@acme.test",
		FirstName: "One",
		LastName:  "Time",
		Password:  "hunter22hunter",
	})
	require.NoError(t, err)

	// Replaying the token is rejected even with the original email
	_, err = client.Register(t.Context(), accountsdk.RegisterRequest{
		Token:     token,
		Email:     "onetime@acme.test",
		FirstName: "Two",
		LastName:  "Time",
		Password:  "hunter22hunter",
	})
	require.True(t, accountsdk.IsCode(err, accountsdk.ErrorCodeInvalidToken))
}

func TestInvitationEmailMustMatch(t *testing.T) {
	client, sender := setupServer(t)
	admin := bootstrapOrg(t, client)

	_, err := admin.Invite(t.Context(), "intended@acme.test")
	require.NoError(t, err)

	_, err = client.Register(t.Context(), accountsdk.RegisterRequest{
		Token:     sender.lastToken(t),
		Email:     "interceptor@evil.test",
		FirstName: "I",
		LastName:  "C",
		Password:  "hunter22hunter",
	})
	require.True(t, accountsdk.IsCode(err, accountsdk.ErrorCodeInvalidToken))
}

func TestDuplicateInvitationRejected(t *testing.T) {
	client, _ := setupServer(t)
	admin := bootstrapOrg(t, client)

	_, err := admin.Invite(t.Context(), "popular@acme.test")
	require.NoError(t, err)

	_, err = admin.Invite(t.Context(), "popular@acme.test")
	require.True(t, accountsdk.IsCode(err, accountsdk.ErrorCodeInvitationExists))

	_, err = admin.Invite(t.Context(), "admin@acme.test")
	require.True(t, accountsdk.IsCode(err, accountsdk.ErrorCodeUserExists))
}

func TestMemberCannotUseAdminEndpoints(t *testing.T) {
	client, sender := setupServer(t)
	admin := bootstrapOrg(t, client)
	member := inviteAndRegister(t, client, admin, sender, "plain@acme.test", "hunter22hunter")

	_, err := member.Members(t.Context())
	require.Error(t, err)
	apiErr, ok := err.(*accountsdk.APIError)
	require.True(t, ok)
	require.Equal(t, 403, apiErr.StatusCode)

	_, err = member.Invite(t.Context(), "friend@acme.test")
	require.Error(t, err)

	err = member.ChangeRole(t.Context(), admin.User().ID, "member")
	require.Error(t, err)
}

func TestRoleChangeAndRemoval(t *testing.T) {
	client, sender := setupServer(t)
	admin := bootstrapOrg(t, client)
	member := inviteAndRegister(t, client, admin, sender, "riser@acme.test", "hunter22hunter")

	// Promote the member to staff
	require.NoError(t, admin.ChangeRole(t.Context(), member.User().ID, "staff"))

	members, err := admin.Members(t.Context())
	require.NoError(t, err)
	require.Len(t, members, 2)
	for _, m := range members {
		if m.ID == member.User().ID {
			require.Equal(t, "staff", m.Role)
		}
	}

	// Admins cannot demote themselves
	err = admin.ChangeRole(t.Context(), admin.User().ID, "member")
	require.True(t, accountsdk.IsCode(err, accountsdk.ErrorCodeAccessDenied))

	// The last admin cannot be removed
	err = admin.RemoveMember(t.Context(), admin.User().ID)
	require.True(t, accountsdk.IsCode(err, accountsdk.ErrorCodeLastAdmin))

	// Removing the member works and their session stops resolving data
	require.NoError(t, admin.RemoveMember(t.Context(), member.User().ID))

	members, err = admin.Members(t.Context())
	require.NoError(t, err)
	require.Len(t, members, 1)

	// Removed member can no longer log in
	_, err = client.Login(t.Context(), "riser@acme.test", "hunter22hunter")
	require.True(t, accountsdk.IsCode(err, accountsdk.ErrorCodeInvalidCredentials))
}

func TestInvitationRevocation(t *testing.T) {
	client, sender := setupServer(t)
	admin := bootstrapOrg(t, client)

	inv, err := admin.Invite(t.Context(), "revoked@acme.test")
	require.NoError(t, err)
	token := sender.lastToken(t)

	require.NoError(t, admin.RevokeInvitation(t.Context(), inv.ID))

	_, err = client.Register(t.Context(), accountsdk.RegisterRequest{
		Token:     token,
		Email:     "revoked@acme.test",
		FirstName: "R",
		LastName:  "V",
		Password:  "hunter22hunter",
	})
	require.True(t, accountsdk.IsCode(err, accountsdk.ErrorCodeInvalidToken))
}

func TestOrgAndConnectionSettings(t *testing.T) {
	client, _ := setupServer(t)
	admin := bootstrapOrg(t, client)

	org, err := admin.RenameOrg(t.Context(), "Acme Rebranded")
	require.NoError(t, err)
	require.Equal(t, "Acme Rebranded", org.Name)

	_, err = admin.Connection(t.Context())
	require.True(t, accountsdk.IsCode(err, accountsdk.ErrorCodeNotFound))

	conn, err := admin.SaveConnection(t.Context(), accountsdk.ConnectionRequest{
		ConnectionType: "openapi",
		BaseURL:        "https://api.acme.test",
		APIKey:         "key",
		APISecret:      "secret",
	})
	require.NoError(t, err)
	require.Equal(t, "openapi", conn.ConnectionType)

	got, err := admin.Connection(t.Context())
	require.NoError(t, err)
	require.Equal(t, conn.ID, got.ID)
}

func TestHealthEndpoints(t *testing.T) {
	client, _ := setupServer(t)

	livez, err := client.Livez(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", livez.Status)

	readyz, err := client.Readyz(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", readyz.Status)
}

// TestLoginRateLimited exercises the per-IP limiter on the credential
// endpoint.
func TestLoginRateLimited(t *testing.T) {
	client, _ := setupServer(t)

	var rateLimited bool
	for range 10 {
		_, err := client.Login(t.Context(), "nobody@acme.test", "wrong")
		require.Error(t, err)
		if apiErr, ok := err.(*accountsdk.APIError); ok && apiErr.StatusCode == 429 {
			rateLimited = true
			break
		}
	}
	require.True(t, rateLimited, "expected a 429 after exhausting the burst")
}
