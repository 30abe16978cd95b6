package sqlite

import (
	"context"
	"time"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
)

type connectionsRepo struct {
	db dbtx
}

func (r *connectionsRepo) GetConnectionByOrg(ctx context.Context, orgID string) (domain.Connection, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, connection_type, base_url, api_key, api_secret, org_id, created_at, updated_at
		 FROM connections WHERE org_id = ?`, orgID)

	var c domain.Connection
	var createdAt, updatedAt string
	if err := row.Scan(&c.ID, &c.ConnectionType, &c.BaseURL, &c.APIKey, &c.APISecret,
		&c.OrgID, &createdAt, &updatedAt); err != nil {
		return domain.Connection{}, mapNotFound(err)
	}
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return c, nil
}

func (r *connectionsRepo) UpsertConnection(ctx context.Context, c domain.Connection) error {
	now := fmtTime(time.Now())
	// One connection per org, enforced by the UNIQUE(org_id) constraint.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO connections (id, connection_type, base_url, api_key, api_secret, org_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (org_id) DO UPDATE SET
		   connection_type = excluded.connection_type,
		   base_url = excluded.base_url,
		   api_key = excluded.api_key,
		   api_secret = excluded.api_secret,
		   updated_at = excluded.updated_at`,
		c.ID, c.ConnectionType, c.BaseURL, c.APIKey, c.APISecret, c.OrgID, now, now)
	return err
}
