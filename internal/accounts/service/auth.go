package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
	"github.com/dashdocs/dashdocs/internal/accounts/store"
	"github.com/dashdocs/dashdocs/pkg/cryptox"
	"github.com/dashdocs/dashdocs/pkg/slogx"
)

// ErrInvalidCredentials covers both unknown emails and wrong passwords so
// the response never reveals which half failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// SessionEstablisher signs session tokens. Satisfied by *sessionx.Manager.
type SessionEstablisher interface {
	Establish(userID, orgID, role, email string) (string, error)
}

type AuthService struct {
	Store    store.Store
	Sessions SessionEstablisher
}

// Login verifies an email/password pair and returns the user plus a signed
// session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate inputs.
	email, err := normalizeEmail(email)
	if err != nil || password == "" {
		return domain.User{}, "", ErrInvalidCredentials
	}

	// 2. Look up the account.
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempt for unknown email")
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return domain.User{}, "", err
	}

	// 3. Verify the password.
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("login attempt with wrong password", slog.String("user_id", user.ID))
		return domain.User{}, "", ErrInvalidCredentials
	}

	// 4. Establish the session.
	session, err := s.Sessions.Establish(user.ID, user.OrgID, user.Role.String(), user.Email)
	if err != nil {
		log.Error("failed to establish session", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return user, session, nil
}
