package accounts_test

import (
	"context"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	httpapi "github.com/dashdocs/dashdocs/internal/accounts/http"
	"github.com/dashdocs/dashdocs/internal/accounts/notify"
	"github.com/dashdocs/dashdocs/internal/accounts/service"
	"github.com/dashdocs/dashdocs/internal/accounts/store/drivers/sqlite"
	"github.com/dashdocs/dashdocs/pkg/accountsdk"
	"github.com/dashdocs/dashdocs/pkg/cryptox"
	"github.com/dashdocs/dashdocs/pkg/sessionx"
	"github.com/dashdocs/dashdocs/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const bootstrapToken = "e2e-bootstrap-token"

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "accounts-e2e-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// captureSender records invitation emails so tests can fish the
// registration token out of the link.
type captureSender struct {
	mu   sync.Mutex
	sent []notify.Invite
}

func (c *captureSender) Send(_ context.Context, inv notify.Invite) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, inv)
	return nil
}

func (c *captureSender) lastToken(t *testing.T) string {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.sent, "no invitation email was sent")

	link, err := url.Parse(c.sent[len(c.sent)-1].RegistrationLink)
	require.NoError(t, err)
	token := link.Query().Get("token")
	require.NotEmpty(t, token)
	return token
}

// setupServer wires the full router against an in-memory database and
// serves it on a local listener.
func setupServer(t *testing.T) (*accountsdk.SDKClient, *captureSender) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	sessions, err := sessionx.NewManager("e2e-session-secret", "accounts-e2e", time.Hour)
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{Service: "accounts-e2e", Level: "error", Format: "text"})
	sender := &captureSender{}

	router := httpapi.NewRouter(sessions, "e2e", st, logger)
	router.AuthService = &service.AuthService{Store: st, Sessions: sessions}
	router.InviteService = &service.InviteService{
		Store:    st,
		Sender:   sender,
		Sessions: sessions,
		BaseURL:  "https://app.dashdocs.test",
	}
	router.MemberService = &service.MemberService{Store: st}
	router.OrgService = &service.OrgService{Store: st}
	router.BootstrapService = &service.BootstrapService{Store: st, Token: bootstrapToken}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return accountsdk.NewSDKClient(server.URL), sender
}

// bootstrapOrg seeds the deployment and logs in as the new admin.
func bootstrapOrg(t *testing.T, client *accountsdk.SDKClient) *accountsdk.Session {
	t.Helper()

	resp, err := client.Bootstrap(t.Context(), bootstrapToken, accountsdk.BootstrapRequest{
		OrgName:        "Acme",
		AdminEmail:     "admin@acme.test",
		AdminFirstName: "Ada",
		AdminLastName:  "Admin",
		AdminPassword:  "correct horse battery",
	})
	require.NoError(t, err)
	require.Equal(t, "admin", resp.User.Role)

	session, err := client.Login(t.Context(), "admin@acme.test", "correct horse battery")
	require.NoError(t, err)
	return session
}

// inviteAndRegister runs the full invite/redeem loop for one email.
func inviteAndRegister(
	t *testing.T,
	client *accountsdk.SDKClient,
	admin *accountsdk.Session,
	sender *captureSender,
	email, password string,
) *accountsdk.Session {
	t.Helper()

	_, err := admin.Invite(t.Context(), email)
	require.NoError(t, err)

	session, err := client.Register(t.Context(), accountsdk.RegisterRequest{
		Token:     sender.lastToken(t),
		Email:     email,
		FirstName: "New",
		LastName:  "Member",
		Password:  password,
	})
	require.NoError(t, err)
	return session
}
