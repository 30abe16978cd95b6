package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
	"github.com/dashdocs/dashdocs/internal/accounts/store"
	"github.com/dashdocs/dashdocs/pkg/cryptox"
	"github.com/dashdocs/dashdocs/pkg/idx"
	"github.com/dashdocs/dashdocs/pkg/slogx"
)

var (
	ErrBootstrapDone         = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapData is the seed input for a fresh deployment.
type BootstrapData struct {
	OrgName        string
	AdminEmail     string
	AdminFirstName string
	AdminLastName  string

	// AdminPassword is optional. When empty a random password is
	// generated and returned so it can be shown exactly once.
	AdminPassword string
}

type BootstrapService struct {
	Store store.Store
	Token string // Pre-configured bootstrap token
}

// IsBootstrapped reports whether the deployment already has an org and a
// user.
func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	orgsEmpty, err := s.Store.Orgs().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	usersEmpty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !orgsEmpty && !usersEmpty, nil
}

// Bootstrap creates the first organization and its admin. It only works
// once per deployment and only with the pre-configured token.
func (s *BootstrapService) Bootstrap(
	ctx context.Context,
	token string,
	req BootstrapData,
) (domain.User, string, error) {
	l := slogx.FromContext(ctx)

	// 1. Check if already bootstrapped
	if bootstrapped, _ := s.IsBootstrapped(ctx); bootstrapped {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return domain.User{}, "", ErrBootstrapDone
	}

	// 2. Validate provided token
	if token != s.Token {
		l.Warn("unauthorized bootstrap attempt")
		return domain.User{}, "", ErrBootstrapUnauthorized
	}

	// 3. Validate seed data
	email, err := normalizeEmail(req.AdminEmail)
	if err != nil || req.OrgName == "" || req.AdminFirstName == "" || req.AdminLastName == "" {
		return domain.User{}, "", ErrValidation
	}
	password := req.AdminPassword
	if password == "" {
		password, err = cryptox.GeneratePassword()
		if err != nil {
			l.Error("failed to generate admin password", slog.Any("error", err))
			return domain.User{}, "", err
		}
	} else if len(password) < minPasswordLength {
		return domain.User{}, "", ErrValidation
	}

	// 4. Hash password
	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return domain.User{}, "", err
	}

	org := domain.Org{
		ID:   idx.New().String(),
		Name: req.OrgName,
	}
	admin := domain.User{
		ID:           idx.New().String(),
		FirstName:    req.AdminFirstName,
		LastName:     req.AdminLastName,
		Email:        email,
		PasswordHash: passHash,
		Role:         domain.RoleAdmin,
		OrgID:        org.ID,
	}

	// 5. Create the org and its admin in a transaction
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Orgs().CreateOrg(ctx, org); err != nil {
			return err
		}
		return tx.Users().CreateUser(ctx, admin)
	})
	if err != nil {
		l.Error("failed to bootstrap system", slog.Any("error", err))
		return domain.User{}, "", err
	}

	l.Info("successfully bootstrapped system",
		slog.String("org_id", org.ID),
		slog.String("admin_user_id", admin.ID),
	)
	if req.AdminPassword != "" {
		password = "" // never echo a caller-chosen password back
	}
	return admin, password, nil
}
