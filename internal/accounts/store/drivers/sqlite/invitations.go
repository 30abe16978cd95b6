package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, email, org_id, role, token, expires_at, accepted, created_at, updated_at`

func scanInvitation(row *sql.Row) (domain.Invitation, error) {
	var inv domain.Invitation
	var role, expiresAt, createdAt, updatedAt string
	err := row.Scan(&inv.ID, &inv.Email, &inv.OrgID, &role, &inv.Token,
		&expiresAt, &inv.Accepted, &createdAt, &updatedAt)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	inv.Role = domain.Role(role)
	inv.ExpiresAt = parseTime(expiresAt)
	inv.CreatedAt = parseTime(createdAt)
	inv.UpdatedAt = parseTime(updatedAt)
	return inv, nil
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	now := fmtTime(time.Now())
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invitations (id, email, org_id, role, token, expires_at, accepted, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, inv.OrgID, inv.Role.String(), inv.Token,
		fmtTime(inv.ExpiresAt), inv.Accepted, now, now)
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByTokenAndEmail(
	ctx context.Context,
	token, email string,
) (domain.Invitation, error) {
	return scanInvitation(r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE token = ? AND email = ?`,
		token, email))
}

func (r *invitationsRepo) GetOutstandingInvitationByEmail(
	ctx context.Context,
	email string,
) (domain.Invitation, error) {
	return scanInvitation(r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations
		 WHERE email = ? AND accepted = 0 AND expires_at > ?`,
		email, fmtTime(time.Now())))
}

func (r *invitationsRepo) MarkInvitationAccepted(ctx context.Context, invitationID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE invitations SET accepted = 1, updated_at = ? WHERE id = ?`,
		fmtTime(time.Now()), invitationID)
	return err
}

func (r *invitationsRepo) DeleteInvitationsByEmail(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invitations WHERE email = ?`, email)
	return err
}

func (r *invitationsRepo) DeleteLapsedInvitationsByEmail(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invitations WHERE email = ? AND accepted = 0 AND expires_at <= ?`,
		email, fmtTime(time.Now()))
	return err
}

func (r *invitationsRepo) DeleteInvitationByID(ctx context.Context, invitationID, orgID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invitations WHERE id = ? AND org_id = ?`, invitationID, orgID)
	return err
}

func (r *invitationsRepo) ListInvitationsByOrg(
	ctx context.Context,
	orgID string,
) ([]domain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE org_id = ? ORDER BY created_at, id`,
		orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []domain.Invitation
	for rows.Next() {
		var inv domain.Invitation
		var role, expiresAt, createdAt, updatedAt string
		if err := rows.Scan(&inv.ID, &inv.Email, &inv.OrgID, &role, &inv.Token,
			&expiresAt, &inv.Accepted, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		inv.Role = domain.Role(role)
		inv.ExpiresAt = parseTime(expiresAt)
		inv.CreatedAt = parseTime(createdAt)
		inv.UpdatedAt = parseTime(updatedAt)
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

func (r *invitationsRepo) DeleteExpiredInvitations(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invitations WHERE accepted = 0 AND expires_at <= ?`,
		fmtTime(time.Now()))
	return err
}
