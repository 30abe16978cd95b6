package domain

// Actor is the authenticated user performing an action, as carried by the
// session token. Policy decisions only ever look at these three fields.
type Actor struct {
	ID    string
	Role  Role
	OrgID string
}
