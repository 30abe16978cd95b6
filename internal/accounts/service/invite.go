package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
	"github.com/dashdocs/dashdocs/internal/accounts/notify"
	"github.com/dashdocs/dashdocs/internal/accounts/policy"
	"github.com/dashdocs/dashdocs/internal/accounts/store"
	"github.com/dashdocs/dashdocs/pkg/cryptox"
	"github.com/dashdocs/dashdocs/pkg/idx"
	"github.com/dashdocs/dashdocs/pkg/slogx"
)

var (
	ErrValidation         = errors.New("invalid request")
	ErrUserExists         = errors.New("user already exists")
	ErrInvitationExists   = errors.New("an outstanding invitation already exists for this email")
	ErrInvalidToken       = errors.New("invitation token is invalid")
	ErrInviteExpired      = errors.New("invitation has expired")
	ErrNotificationFailed = errors.New("invitation stored but notification delivery failed")
	ErrUnauthorized       = errors.New("unauthorized")
)

// DefaultInviteTTL is how long a freshly minted invitation can be redeemed.
const DefaultInviteTTL = 24 * time.Hour

const minPasswordLength = 6

type InviteService struct {
	Store    store.Store
	Sender   notify.Sender
	Sessions SessionEstablisher

	// BaseURL is the public origin registration links are built on,
	// e.g. "https://app.dashdocs.io".
	BaseURL string

	// InviteTTL overrides DefaultInviteTTL when non-zero.
	InviteTTL time.Duration
}

func (s *InviteService) ttl() time.Duration {
	if s.InviteTTL > 0 {
		return s.InviteTTL
	}
	return DefaultInviteTTL
}

// CreateInvitation mints a single-use invitation for email on behalf of an
// org admin and emails the registration link. The invitation row is
// committed before the email goes out, so a delivery failure returns the
// stored invitation alongside ErrNotificationFailed.
func (s *InviteService) CreateInvitation(
	ctx context.Context,
	actor domain.Actor,
	email string,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Only same-org admins may invite.
	if err := policy.CanManageInvitations(actor, actor.OrgID); err != nil {
		log.Warn("invitation denied",
			slog.String("actor_id", actor.ID),
			slog.String("role", actor.Role.String()),
		)
		return domain.Invitation{}, ErrUnauthorized
	}

	// 2. Validate and normalize the address.
	email, err := normalizeEmail(email)
	if err != nil {
		return domain.Invitation{}, ErrValidation
	}

	// 3. Reject addresses that already belong to a user.
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.Invitation{}, ErrUserExists
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check for existing user", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	// 4. Reject addresses with an outstanding (unaccepted, unexpired)
	// invitation from any org.
	if _, err := s.Store.Invitations().GetOutstandingInvitationByEmail(ctx, email); err == nil {
		return domain.Invitation{}, ErrInvitationExists
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check for outstanding invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	// 5. Mint the token.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	inv := domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		OrgID:     actor.OrgID,
		Role:      domain.RoleMember,
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl()).UTC(),
	}

	// 6. Clear any lapsed rows and insert in one transaction. The delete
	// only touches expired rows, so an outstanding invitation survives and
	// the partial unique index over unaccepted emails turns a concurrent
	// duplicate into ErrAlreadyExists, closing the check-then-write race.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invitations().DeleteLapsedInvitationsByEmail(ctx, email); err != nil {
			return err
		}
		return tx.Invitations().CreateInvitation(ctx, inv)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Invitation{}, ErrInvitationExists
		}
		log.Error("failed to store invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	// 7. Send the registration link. The invitation already exists at this
	// point; a failed send is surfaced but nothing is rolled back.
	org, err := s.Store.Orgs().GetOrgByID(ctx, actor.OrgID)
	if err != nil {
		log.Error("failed to load org for invitation email", slog.Any("error", err))
		return inv, ErrNotificationFailed
	}
	err = s.Sender.Send(ctx, notify.Invite{
		ToEmail:          email,
		OrgName:          org.Name,
		RegistrationLink: s.registrationLink(token),
	})
	if err != nil {
		log.Error("failed to deliver invitation email",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return inv, ErrNotificationFailed
	}

	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("org_id", inv.OrgID),
	)
	return inv, nil
}

// RedeemInvitation exchanges a (token, email) pair plus profile details for
// a new member account and an authenticated session.
func (s *InviteService) RedeemInvitation(
	ctx context.Context,
	token, email, firstName, lastName, password string,
) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate inputs.
	email, err := normalizeEmail(email)
	if err != nil {
		return domain.User{}, "", ErrValidation
	}
	if token == "" || firstName == "" || lastName == "" {
		return domain.User{}, "", ErrValidation
	}
	if len(password) < minPasswordLength {
		return domain.User{}, "", ErrValidation
	}

	// 2. The token alone is not enough; the email must match the one the
	// invitation was minted for.
	inv, err := s.Store.Invitations().GetInvitationByTokenAndEmail(ctx, token, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("redemption attempt with unknown token/email pair")
			return domain.User{}, "", ErrInvalidToken
		}
		log.Error("failed to look up invitation", slog.Any("error", err))
		return domain.User{}, "", err
	}

	// 3. An accepted invitation cannot be replayed.
	if inv.Accepted {
		log.Warn("redemption attempt on accepted invitation",
			slog.String("invitation_id", inv.ID),
		)
		return domain.User{}, "", ErrInvalidToken
	}
	if !time.Now().Before(inv.ExpiresAt) {
		return domain.User{}, "", ErrInviteExpired
	}

	// 4. The address must still be free.
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, "", ErrUserExists
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check for existing user", slog.Any("error", err))
		return domain.User{}, "", err
	}

	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, "", err
	}

	user := domain.User{
		ID:           idx.New().String(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passHash,
		Role:         inv.Role,
		OrgID:        inv.OrgID,
	}

	// 5. Create the member and consume the invitation atomically. The
	// unique email column catches a concurrent registration.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		return tx.Invitations().MarkInvitationAccepted(ctx, inv.ID)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, "", ErrUserExists
		}
		log.Error("failed to create user from invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.User{}, "", err
	}

	// 6. Establish the session so the new member lands signed in.
	session, err := s.Sessions.Establish(user.ID, user.OrgID, user.Role.String(), user.Email)
	if err != nil {
		log.Error("failed to establish session", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("invitation redeemed",
		slog.String("invitation_id", inv.ID),
		slog.String("user_id", user.ID),
		slog.String("org_id", user.OrgID),
	)
	return user, session, nil
}

// ListInvitations returns the acting admin's org invitations, oldest first.
func (s *InviteService) ListInvitations(ctx context.Context, actor domain.Actor) ([]domain.Invitation, error) {
	if err := policy.CanViewOrgMembers(actor, actor.OrgID); err != nil {
		return nil, ErrUnauthorized
	}
	return s.Store.Invitations().ListInvitationsByOrg(ctx, actor.OrgID)
}

// RemoveInvitation revokes a pending invitation. The delete is scoped to
// the actor's org so a foreign id silently matches nothing.
func (s *InviteService) RemoveInvitation(ctx context.Context, actor domain.Actor, invitationID string) error {
	log := slogx.FromContext(ctx)

	if err := policy.CanManageInvitations(actor, actor.OrgID); err != nil {
		return ErrUnauthorized
	}
	if invitationID == "" {
		return ErrValidation
	}
	if err := s.Store.Invitations().DeleteInvitationByID(ctx, invitationID, actor.OrgID); err != nil {
		log.Error("failed to delete invitation",
			slog.String("invitation_id", invitationID),
			slog.Any("error", err),
		)
		return err
	}
	log.Info("invitation removed", slog.String("invitation_id", invitationID))
	return nil
}

func (s *InviteService) registrationLink(token string) string {
	base := strings.TrimSuffix(s.BaseURL, "/")
	return fmt.Sprintf("%s/register?token=%s", base, url.QueryEscape(token))
}

// normalizeEmail lowercases and validates an address, returning the bare
// addr-spec without any display name.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", err
	}
	if addr.Address != email {
		return "", errors.New("display names are not accepted")
	}
	return email, nil
}
