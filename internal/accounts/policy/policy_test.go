package policy

import (
	"testing"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
	"github.com/stretchr/testify/require"
)

var (
	adminO1  = domain.Actor{ID: "u-admin", Role: domain.RoleAdmin, OrgID: "org-1"}
	memberO1 = domain.Actor{ID: "u-member", Role: domain.RoleMember, OrgID: "org-1"}
	staffO1  = domain.Actor{ID: "u-staff", Role: domain.RoleStaff, OrgID: "org-1"}
	adminO2  = domain.Actor{ID: "u-admin-2", Role: domain.RoleAdmin, OrgID: "org-2"}
)

func TestCanModifyRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		actor  domain.Actor
		target string
		orgID  string
		allow  bool
	}{
		{"admin changes another member", adminO1, "u-member", "org-1", true},
		{"member denied", memberO1, "u-staff", "org-1", false},
		{"staff denied", staffO1, "u-member", "org-1", false},
		{"cross-org admin denied", adminO2, "u-member", "org-1", false},
		{"self-edit denied", adminO1, "u-admin", "org-1", false},
		{"admin targeting foreign org denied", adminO1, "u-member", "org-2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanModifyRole(tt.actor, tt.target, tt.orgID)
			if tt.allow {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrDenied)
			}
		})
	}
}

func TestCanRemoveMember(t *testing.T) {
	t.Parallel()

	require.NoError(t, CanRemoveMember(adminO1, "u-member", "org-1"))

	// Self-removal is not blocked by the policy itself.
	require.NoError(t, CanRemoveMember(adminO1, "u-admin", "org-1"))

	require.ErrorIs(t, CanRemoveMember(memberO1, "u-staff", "org-1"), ErrDenied)
	require.ErrorIs(t, CanRemoveMember(adminO2, "u-member", "org-1"), ErrDenied)
	require.ErrorIs(t, CanRemoveMember(adminO1, "u-member", "org-2"), ErrDenied)
}

func TestCanViewOrgMembers(t *testing.T) {
	t.Parallel()

	require.NoError(t, CanViewOrgMembers(adminO1, "org-1"))
	require.ErrorIs(t, CanViewOrgMembers(memberO1, "org-1"), ErrDenied)
	require.ErrorIs(t, CanViewOrgMembers(staffO1, "org-1"), ErrDenied)
	require.ErrorIs(t, CanViewOrgMembers(adminO1, "org-2"), ErrDenied)
}

func TestCanManageInvitations(t *testing.T) {
	t.Parallel()

	require.NoError(t, CanManageInvitations(adminO1, "org-1"))
	require.ErrorIs(t, CanManageInvitations(memberO1, "org-1"), ErrDenied)
	require.ErrorIs(t, CanManageInvitations(adminO2, "org-1"), ErrDenied)
}

func TestCanUpdateOrg(t *testing.T) {
	t.Parallel()

	require.NoError(t, CanUpdateOrg(adminO1, "org-1"))
	require.ErrorIs(t, CanUpdateOrg(staffO1, "org-1"), ErrDenied)
	require.ErrorIs(t, CanUpdateOrg(adminO1, "org-2"), ErrDenied)
}
