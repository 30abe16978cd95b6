package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
	"github.com/dashdocs/dashdocs/internal/accounts/policy"
	"github.com/dashdocs/dashdocs/internal/accounts/store"
	"github.com/dashdocs/dashdocs/pkg/slogx"
)

// ErrLastAdmin refuses the removal that would leave an org with no admin
// at all.
var ErrLastAdmin = errors.New("cannot remove the last admin of an organization")

type MemberService struct {
	Store store.Store
}

// ListMembers returns the acting admin's org members, oldest first.
func (s *MemberService) ListMembers(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if err := policy.CanViewOrgMembers(actor, actor.OrgID); err != nil {
		return nil, ErrUnauthorized
	}
	return s.Store.Users().ListUsersByOrg(ctx, actor.OrgID)
}

// ChangeRole sets targetUserID's role within the actor's org. The update is
// scoped to (user, org), so an id from another tenant matches nothing and
// the call is a successful no-op.
func (s *MemberService) ChangeRole(
	ctx context.Context,
	actor domain.Actor,
	targetUserID string,
	role domain.Role,
) error {
	log := slogx.FromContext(ctx)

	// 1. Admins only, never on themselves.
	if err := policy.CanModifyRole(actor, targetUserID, actor.OrgID); err != nil {
		log.Warn("role change denied",
			slog.String("actor_id", actor.ID),
			slog.String("target_user_id", targetUserID),
		)
		return ErrUnauthorized
	}

	// 2. The role set is closed.
	if _, err := domain.ParseRole(role.String()); err != nil {
		return ErrValidation
	}

	// 3. Apply.
	if err := s.Store.Users().UpdateUserRole(ctx, targetUserID, actor.OrgID, role); err != nil {
		log.Error("failed to update role",
			slog.String("target_user_id", targetUserID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("member role changed",
		slog.String("target_user_id", targetUserID),
		slog.String("role", role.String()),
	)
	return nil
}

// RemoveMember deletes targetUserID from the actor's org along with any
// invitations addressed to them. Removing an id that does not exist in the
// org is a successful no-op. Admins may remove themselves, but the last
// admin of an org cannot be removed.
func (s *MemberService) RemoveMember(ctx context.Context, actor domain.Actor, targetUserID string) error {
	log := slogx.FromContext(ctx)

	// 1. Admins only.
	if err := policy.CanRemoveMember(actor, targetUserID, actor.OrgID); err != nil {
		log.Warn("member removal denied",
			slog.String("actor_id", actor.ID),
			slog.String("target_user_id", targetUserID),
		)
		return ErrUnauthorized
	}

	// 2. Load the target inside the transaction so the last-admin count
	// and the delete see the same state.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		target, err := tx.Users().GetUserByID(ctx, targetUserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil // already gone
			}
			return err
		}
		if target.OrgID != actor.OrgID {
			return nil // foreign tenant, treat as absent
		}

		// 3. Keep at least one admin.
		if target.Role.IsAdmin() {
			admins, err := tx.Users().CountAdminsByOrg(ctx, actor.OrgID)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return ErrLastAdmin
			}
		}

		// 4. Delete the user and any invitations to their address.
		if err := tx.Invitations().DeleteInvitationsByEmail(ctx, target.Email); err != nil {
			return err
		}
		return tx.Users().DeleteUser(ctx, targetUserID, actor.OrgID)
	})
	if err != nil {
		if errors.Is(err, ErrLastAdmin) {
			return ErrLastAdmin
		}
		log.Error("failed to remove member",
			slog.String("target_user_id", targetUserID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("member removed",
		slog.String("target_user_id", targetUserID),
		slog.String("org_id", actor.OrgID),
	)
	return nil
}
