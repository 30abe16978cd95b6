// Package policy holds the pure authorization decisions of the accounts
// service. Every function takes the acting user (as carried by the session)
// and answers allow/deny without touching storage; callers are responsible
// for building the Actor from a fresh user row.
//
// All decisions are scoped to a single organization. Cross-tenant access is
// always denied regardless of role.
package policy

import (
	"errors"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
)

// ErrDenied is returned by every denied decision. Callers translate it to
// their own Unauthorized error.
var ErrDenied = errors.New("policy: denied")

// CanModifyRole decides whether actor may change targetUserID's role within
// orgID. Denied when the actor is not an admin, belongs to a different org,
// or is targeting themself. The self-edit block prevents both privilege
// escalation and an admin demoting themself into a locked-out org.
func CanModifyRole(actor domain.Actor, targetUserID, orgID string) error {
	if !actor.Role.IsAdmin() {
		return ErrDenied
	}
	if actor.OrgID != orgID {
		return ErrDenied
	}
	if actor.ID == targetUserID {
		return ErrDenied
	}
	return nil
}

// CanRemoveMember decides whether actor may remove targetUserID from orgID.
// Self-removal is allowed by this policy; the service layer separately
// refuses to remove the last remaining admin of an org.
func CanRemoveMember(actor domain.Actor, targetUserID, orgID string) error {
	if !actor.Role.IsAdmin() {
		return ErrDenied
	}
	if actor.OrgID != orgID {
		return ErrDenied
	}
	return nil
}

// CanViewOrgMembers decides whether actor may list orgID's members and
// pending invitations.
func CanViewOrgMembers(actor domain.Actor, orgID string) error {
	if !actor.Role.IsAdmin() || actor.OrgID != orgID {
		return ErrDenied
	}
	return nil
}

// CanManageInvitations decides whether actor may create or revoke
// invitations for orgID.
func CanManageInvitations(actor domain.Actor, orgID string) error {
	if !actor.Role.IsAdmin() || actor.OrgID != orgID {
		return ErrDenied
	}
	return nil
}

// CanUpdateOrg decides whether actor may change orgID's settings (name,
// integration connection).
func CanUpdateOrg(actor domain.Actor, orgID string) error {
	if !actor.Role.IsAdmin() || actor.OrgID != orgID {
		return ErrDenied
	}
	return nil
}
