package domain

import "time"

// Org is a tenant. All users, invitations and connections hang off exactly
// one Org and every query is scoped by its id.
type Org struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
