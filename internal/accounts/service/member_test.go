package service

import (
	"context"
	"testing"
	"time"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
	"github.com/dashdocs/dashdocs/internal/accounts/store"
	"github.com/dashdocs/dashdocs/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestChangeRole(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, admin, member := seedOrg(t, s, "acme")
	_, otherAdmin, _ := seedOrg(t, s, "globex")

	svc := &MemberService{Store: s}

	t.Run("admin promotes a member", func(t *testing.T) {
		require.NoError(t, svc.ChangeRole(ctx, admin.Actor(), member.ID, domain.RoleStaff))

		updated, err := s.Users().GetUserByID(ctx, member.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleStaff, updated.Role)
	})

	t.Run("members cannot change roles", func(t *testing.T) {
		err := svc.ChangeRole(ctx, member.Actor(), admin.ID, domain.RoleMember)
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("admins cannot change their own role", func(t *testing.T) {
		err := svc.ChangeRole(ctx, admin.Actor(), admin.ID, domain.RoleMember)
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown roles are rejected", func(t *testing.T) {
		err := svc.ChangeRole(ctx, admin.Actor(), member.ID, domain.Role("owner"))
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("cross-org ids change nothing", func(t *testing.T) {
		require.NoError(t, svc.ChangeRole(ctx, otherAdmin.Actor(), member.ID, domain.RoleAdmin))

		unchanged, err := s.Users().GetUserByID(ctx, member.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleStaff, unchanged.Role)
	})
}

func TestRemoveMember(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	org, admin, member := seedOrg(t, s, "acme")
	_, otherAdmin, _ := seedOrg(t, s, "globex")

	svc := &MemberService{Store: s}

	t.Run("members cannot remove anyone", func(t *testing.T) {
		err := svc.RemoveMember(ctx, member.Actor(), admin.ID)
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("cross-org removal is a no-op", func(t *testing.T) {
		require.NoError(t, svc.RemoveMember(ctx, otherAdmin.Actor(), member.ID))
		_, err := s.Users().GetUserByID(ctx, member.ID)
		require.NoError(t, err)
	})

	t.Run("removal also drops the member's invitations", func(t *testing.T) {
		inv := domain.Invitation{
			ID:        idx.New().String(),
			Email:     member.Email,
			OrgID:     org.ID,
			Role:      domain.RoleMember,
			Token:     "member-reinvite",
			ExpiresAt: time.Now().Add(time.Hour),
		}
		require.NoError(t, s.Invitations().CreateInvitation(ctx, inv))

		require.NoError(t, svc.RemoveMember(ctx, admin.Actor(), member.ID))

		_, err := s.Users().GetUserByID(ctx, member.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Invitations().GetInvitationByTokenAndEmail(ctx, inv.Token, inv.Email)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("removing an absent id succeeds", func(t *testing.T) {
		require.NoError(t, svc.RemoveMember(ctx, admin.Actor(), member.ID))
	})

	t.Run("the last admin cannot be removed", func(t *testing.T) {
		err := svc.RemoveMember(ctx, admin.Actor(), admin.ID)
		require.ErrorIs(t, err, ErrLastAdmin)
	})

	t.Run("an admin may remove themself when another admin remains", func(t *testing.T) {
		second := domain.User{
			ID:           idx.New().String(),
			FirstName:    "Bea",
			LastName:     "Backup",
			Email:        "backup@acme.test",
			PasswordHash: "x",
			Role:         domain.RoleAdmin,
			OrgID:        org.ID,
		}
		require.NoError(t, s.Users().CreateUser(ctx, second))

		require.NoError(t, svc.RemoveMember(ctx, admin.Actor(), admin.ID))
		_, err := s.Users().GetUserByID(ctx, admin.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestListMembers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, admin, member := seedOrg(t, s, "acme")
	_, otherAdmin, _ := seedOrg(t, s, "globex")

	svc := &MemberService{Store: s}

	t.Run("members cannot list", func(t *testing.T) {
		_, err := svc.ListMembers(ctx, member.Actor())
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("listing is org scoped and ordered by creation", func(t *testing.T) {
		list, err := svc.ListMembers(ctx, admin.Actor())
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, admin.ID, list[0].ID)
		require.Equal(t, member.ID, list[1].ID)

		other, err := svc.ListMembers(ctx, otherAdmin.Actor())
		require.NoError(t, err)
		require.Len(t, other, 2)
		require.NotContains(t, []string{other[0].ID, other[1].ID}, admin.ID)
	})
}
