package domain

import "time"

// Connection holds an org's integration settings (one record per org).
type Connection struct {
	ID             string
	ConnectionType string
	BaseURL        string
	APIKey         string
	APISecret      string
	OrgID          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
