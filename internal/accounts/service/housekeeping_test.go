package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
	"github.com/dashdocs/dashdocs/internal/accounts/store"
	"github.com/dashdocs/dashdocs/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingCleanup(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	org, _, _ := seedOrg(t, s, "acme")

	expired := domain.Invitation{
		ID:        idx.New().String(),
		Email:     "expired@example.com",
		OrgID:     org.ID,
		Role:      domain.RoleMember,
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	live := domain.Invitation{
		ID:        idx.New().String(),
		Email:     "live@example.com",
		OrgID:     org.ID,
		Role:      domain.RoleMember,
		Token:     "live-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, s.Invitations().CreateInvitation(ctx, expired))
	require.NoError(t, s.Invitations().CreateInvitation(ctx, live))

	hk := NewHousekeepingService(s, slog.Default(), time.Hour)
	hk.cleanup()

	_, err := s.Invitations().GetInvitationByTokenAndEmail(ctx, expired.Token, expired.Email)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Invitations().GetInvitationByTokenAndEmail(ctx, live.Token, live.Email)
	require.NoError(t, err)
}

func TestHousekeepingStartStop(t *testing.T) {
	s := newTestStore(t)

	hk := NewHousekeepingService(s, slog.Default(), time.Hour)
	hk.Start()
	hk.Stop()
}
