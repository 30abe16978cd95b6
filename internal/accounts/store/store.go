package store

import (
	"context"
	"errors"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. It exposes sub-repositories to keep
// concerns tidy and testable.
type Store interface {
	Orgs() Orgs
	Users() Users
	Invitations() Invitations
	Connections() Connections

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run the check-then-write sequences (invitation
	// creation, redemption) atomically.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Orgs interface {
	// GetOrgByID returns an org by id.
	GetOrgByID(ctx context.Context, id string) (domain.Org, error)

	// CreateOrg inserts a new org (id is provided by app via ULID).
	CreateOrg(ctx context.Context, o domain.Org) error

	// UpdateOrgName mutates the name and bumps updated_at.
	UpdateOrgName(ctx context.Context, orgID, name string) error

	// IsEmpty returns true if there are no orgs.
	IsEmpty(ctx context.Context) (bool, error)
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and invitation checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user. The email column is UNIQUE; a
	// duplicate insert returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUserRole sets the role scoped to (userID, orgID) so a
	// cross-org id never matches anything.
	UpdateUserRole(ctx context.Context, userID, orgID string, role domain.Role) error

	// DeleteUser removes the user scoped to (userID, orgID). Deleting a
	// row that does not exist is not an error.
	DeleteUser(ctx context.Context, userID, orgID string) error

	// ListUsersByOrg returns the org's members ordered by creation time.
	ListUsersByOrg(ctx context.Context, orgID string) ([]domain.User, error)

	// CountAdminsByOrg returns how many admins the org has. Used by the
	// last-admin guard on member removal.
	CountAdminsByOrg(ctx context.Context, orgID string) (int, error)

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Invitations interface {
	// CreateInvitation writes a new invitation. A partial unique index on
	// (email) over unaccepted rows turns a concurrent duplicate into
	// ErrAlreadyExists instead of a silent race.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByTokenAndEmail returns the invitation matching the
	// exact (token, email) pair. Token alone is insufficient on purpose.
	GetInvitationByTokenAndEmail(ctx context.Context, token, email string) (domain.Invitation, error)

	// GetOutstandingInvitationByEmail returns the unaccepted, unexpired
	// invitation for an email, if one exists.
	GetOutstandingInvitationByEmail(ctx context.Context, email string) (domain.Invitation, error)

	// MarkInvitationAccepted sets accepted=1 and bumps updated_at
	// (transaction-friendly).
	MarkInvitationAccepted(ctx context.Context, invitationID string) error

	// DeleteInvitationsByEmail removes all invitations for an email.
	// Called when the member with that email is removed from their org.
	DeleteInvitationsByEmail(ctx context.Context, email string) error

	// DeleteLapsedInvitationsByEmail clears expired unaccepted rows for an
	// email so a fresh invitation does not collide with a lapsed one on the
	// partial unique index. Outstanding rows are left in place so the index
	// still rejects a concurrent duplicate.
	DeleteLapsedInvitationsByEmail(ctx context.Context, email string) error

	// DeleteInvitationByID removes a single invitation scoped to
	// (invitationID, orgID).
	DeleteInvitationByID(ctx context.Context, invitationID, orgID string) error

	// ListInvitationsByOrg returns the org's invitations ordered by
	// creation time.
	ListInvitationsByOrg(ctx context.Context, orgID string) ([]domain.Invitation, error)

	// DeleteExpiredInvitations is housekeeping for unaccepted, expired
	// rows.
	DeleteExpiredInvitations(ctx context.Context) error
}

type Connections interface {
	// GetConnectionByOrg returns the org's integration settings.
	GetConnectionByOrg(ctx context.Context, orgID string) (domain.Connection, error)

	// UpsertConnection creates or replaces the org's single connection
	// record.
	UpsertConnection(ctx context.Context, c domain.Connection) error
}
