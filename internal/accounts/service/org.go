package service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
	"github.com/dashdocs/dashdocs/internal/accounts/policy"
	"github.com/dashdocs/dashdocs/internal/accounts/store"
	"github.com/dashdocs/dashdocs/pkg/idx"
	"github.com/dashdocs/dashdocs/pkg/slogx"
)

const maxOrgNameLength = 64

type OrgService struct {
	Store store.Store
}

// GetOrg returns the actor's own organization. Any member may view it.
func (s *OrgService) GetOrg(ctx context.Context, actor domain.Actor) (domain.Org, error) {
	return s.Store.Orgs().GetOrgByID(ctx, actor.OrgID)
}

// UpdateOrgName renames the actor's organization.
func (s *OrgService) UpdateOrgName(ctx context.Context, actor domain.Actor, name string) error {
	log := slogx.FromContext(ctx)

	if err := policy.CanUpdateOrg(actor, actor.OrgID); err != nil {
		return ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxOrgNameLength {
		return ErrValidation
	}
	if err := s.Store.Orgs().UpdateOrgName(ctx, actor.OrgID, name); err != nil {
		log.Error("failed to rename org",
			slog.String("org_id", actor.OrgID),
			slog.Any("error", err),
		)
		return err
	}
	log.Info("org renamed", slog.String("org_id", actor.OrgID))
	return nil
}

// GetConnection returns the org's integration settings. Returns
// store.ErrNotFound when none have been configured yet.
func (s *OrgService) GetConnection(ctx context.Context, actor domain.Actor) (domain.Connection, error) {
	if err := policy.CanUpdateOrg(actor, actor.OrgID); err != nil {
		return domain.Connection{}, ErrUnauthorized
	}
	return s.Store.Connections().GetConnectionByOrg(ctx, actor.OrgID)
}

// ConnectionParams carries the editable fields of an org connection.
type ConnectionParams struct {
	ConnectionType string
	BaseURL        string
	APIKey         string
	APISecret      string
}

// SaveConnection creates or replaces the org's single connection record.
func (s *OrgService) SaveConnection(
	ctx context.Context,
	actor domain.Actor,
	params ConnectionParams,
) (domain.Connection, error) {
	log := slogx.FromContext(ctx)

	if err := policy.CanUpdateOrg(actor, actor.OrgID); err != nil {
		return domain.Connection{}, ErrUnauthorized
	}
	if params.ConnectionType == "" {
		return domain.Connection{}, ErrValidation
	}
	if u, err := url.Parse(params.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return domain.Connection{}, ErrValidation
	}

	conn := domain.Connection{
		ID:             idx.New().String(),
		ConnectionType: params.ConnectionType,
		BaseURL:        params.BaseURL,
		APIKey:         params.APIKey,
		APISecret:      params.APISecret,
		OrgID:          actor.OrgID,
	}

	// Keep the existing id when replacing settings.
	if existing, err := s.Store.Connections().GetConnectionByOrg(ctx, actor.OrgID); err == nil {
		conn.ID = existing.ID
	}

	if err := s.Store.Connections().UpsertConnection(ctx, conn); err != nil {
		log.Error("failed to save connection",
			slog.String("org_id", actor.OrgID),
			slog.Any("error", err),
		)
		return domain.Connection{}, err
	}

	log.Info("connection saved",
		slog.String("org_id", actor.OrgID),
		slog.String("connection_type", conn.ConnectionType),
	)
	return conn, nil
}
