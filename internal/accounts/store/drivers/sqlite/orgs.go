package sqlite

import (
	"context"
	"time"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
)

type orgsRepo struct {
	db dbtx
}

func (r *orgsRepo) GetOrgByID(ctx context.Context, id string) (domain.Org, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM orgs WHERE id = ?`, id)

	var o domain.Org
	var createdAt, updatedAt string
	if err := row.Scan(&o.ID, &o.Name, &createdAt, &updatedAt); err != nil {
		return domain.Org{}, mapNotFound(err)
	}
	o.CreatedAt = parseTime(createdAt)
	o.UpdatedAt = parseTime(updatedAt)
	return o, nil
}

func (r *orgsRepo) CreateOrg(ctx context.Context, o domain.Org) error {
	now := fmtTime(time.Now())
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO orgs (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		o.ID, o.Name, now, now)
	return mapConstraint(err)
}

func (r *orgsRepo) UpdateOrgName(ctx context.Context, orgID, name string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE orgs SET name = ?, updated_at = ? WHERE id = ?`,
		name, fmtTime(time.Now()), orgID)
	return err
}

func (r *orgsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orgs`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
