package domain

import "time"

type Invitation struct {
	ID        string
	Email     string
	OrgID     string
	Role      Role   // Role to assign to the invited user, defaults to member
	Token     string // single-use, 256-bit random, unique
	ExpiresAt time.Time
	Accepted  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Outstanding reports whether the invitation can still be redeemed at t:
// not yet accepted and not past expiry.
func (i Invitation) Outstanding(t time.Time) bool {
	return !i.Accepted && t.Before(i.ExpiresAt)
}
