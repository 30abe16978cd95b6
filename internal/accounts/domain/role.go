package domain

import (
	"errors"
	"fmt"
)

// Role is the closed set of membership roles within an organization. It is
// deliberately a typed enum rather than a free string so the authorization
// policy can be exhaustive.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleStaff  Role = "staff"
)

// ErrUnknownRole reports a role string outside the closed set.
var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole validates an incoming role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleMember, RoleStaff:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

func (r Role) String() string { return string(r) }

// IsAdmin reports whether the role carries administrative rights.
func (r Role) IsAdmin() bool { return r == RoleAdmin }
