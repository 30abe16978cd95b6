package domain

import "time"

type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string // unique across users
	PasswordHash string // argon2id encoded
	Role         Role
	OrgID        string // Foreign key to orgs table, never empty
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor returns the user's identity as seen by the authorization policy.
func (u User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role, OrgID: u.OrgID}
}
