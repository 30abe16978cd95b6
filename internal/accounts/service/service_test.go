package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
	"github.com/dashdocs/dashdocs/internal/accounts/notify"
	"github.com/dashdocs/dashdocs/internal/accounts/store"
	"github.com/dashdocs/dashdocs/internal/accounts/store/drivers/sqlite"
	"github.com/dashdocs/dashdocs/pkg/cryptox"
	"github.com/dashdocs/dashdocs/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "accounts-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// seedOrg creates an org with one admin and one member and returns all
// three.
func seedOrg(t *testing.T, s store.Store, name string) (domain.Org, domain.User, domain.User) {
	t.Helper()
	ctx := context.Background()

	org := domain.Org{ID: idx.New().String(), Name: name}
	require.NoError(t, s.Orgs().CreateOrg(ctx, org))

	hash, err := cryptox.HashPassword("correct horse battery")
	require.NoError(t, err)

	admin := domain.User{
		ID:           idx.New().String(),
		FirstName:    "Ada",
		LastName:     "Admin",
		Email:        "admin@" + name + ".test",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		OrgID:        org.ID,
	}
	require.NoError(t, s.Users().CreateUser(ctx, admin))

	member := domain.User{
		ID:           idx.New().String(),
		FirstName:    "Mel",
		LastName:     "Member",
		Email:        "member@" + name + ".test",
		PasswordHash: hash,
		Role:         domain.RoleMember,
		OrgID:        org.ID,
	}
	require.NoError(t, s.Users().CreateUser(ctx, member))

	return org, admin, member
}

// stubSender records sends and optionally fails.
type stubSender struct {
	sent []notify.Invite
	err  error
}

func (s *stubSender) Send(_ context.Context, inv notify.Invite) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, inv)
	return nil
}

// stubSessions issues predictable tokens.
type stubSessions struct {
	err error
}

func (s *stubSessions) Establish(userID, orgID, role, email string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "session:" + userID + ":" + orgID + ":" + role, nil
}

var errSendFailed = errors.New("smtp said no")

func newInviteService(s store.Store) (*InviteService, *stubSender) {
	sender := &stubSender{}
	return &InviteService{
		Store:     s,
		Sender:    sender,
		Sessions:  &stubSessions{},
		BaseURL:   "https://app.dashdocs.test",
		InviteTTL: time.Hour,
	}, sender
}
