package service

import (
	"context"
	"testing"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
	"github.com/stretchr/testify/require"
)

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	svc := &BootstrapService{Store: s, Token: "seed-token"}

	seed := BootstrapData{
		OrgName:        "Acme",
		AdminEmail:     "founder@acme.test",
		AdminFirstName: "Fay",
		AdminLastName:  "Founder",
	}

	t.Run("wrong token is rejected", func(t *testing.T) {
		_, _, err := svc.Bootstrap(ctx, "guess", seed)
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})

	t.Run("creates the first org and admin with a generated password", func(t *testing.T) {
		admin, password, err := svc.Bootstrap(ctx, "seed-token", seed)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, admin.Role)
		require.NotEmpty(t, admin.OrgID)
		require.NotEmpty(t, password)

		org, err := s.Orgs().GetOrgByID(ctx, admin.OrgID)
		require.NoError(t, err)
		require.Equal(t, "Acme", org.Name)

		// the generated password actually works
		auth := &AuthService{Store: s, Sessions: &stubSessions{}}
		_, _, err = auth.Login(ctx, seed.AdminEmail, password)
		require.NoError(t, err)
	})

	t.Run("second bootstrap is refused", func(t *testing.T) {
		_, _, err := svc.Bootstrap(ctx, "seed-token", seed)
		require.ErrorIs(t, err, ErrBootstrapDone)
	})
}

func TestBootstrapKeepsChosenPasswordSecret(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	svc := &BootstrapService{Store: s, Token: "seed-token"}

	admin, echoed, err := svc.Bootstrap(ctx, "seed-token", BootstrapData{
		OrgName:        "Globex",
		AdminEmail:     "founder@globex.test",
		AdminFirstName: "Gus",
		AdminLastName:  "Founder",
		AdminPassword:  "chosen-by-hand",
	})
	require.NoError(t, err)
	require.Empty(t, echoed)

	auth := &AuthService{Store: s, Sessions: &stubSessions{}}
	_, _, err = auth.Login(ctx, admin.Email, "chosen-by-hand")
	require.NoError(t, err)
}
