// Package sessionx issues and verifies the session tokens of the accounts
// service. Tokens are HS256 JWTs carrying {userId, orgId, role}; the signing
// secret is shared process configuration, there is no key rotation here.
package sessionx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers malformed, mis-signed or wrong-issuer tokens.
	ErrInvalidToken = errors.New("sessionx: invalid session token")
	// ErrExpired reports a structurally valid but expired token.
	ErrExpired = errors.New("sessionx: session token expired")
)

// Manager signs and verifies session tokens with a shared HS256 secret.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewManager builds a Manager. The secret must be non-empty; TTL of zero
// falls back to DefaultSessionTTL.
func NewManager(secret, issuer string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("sessionx: empty session secret")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{secret: []byte(secret), issuer: issuer, ttl: ttl}, nil
}

// Establish issues a signed session token for the given user.
func (m *Manager) Establish(userID, orgID, role, email string) (string, error) {
	return m.sign(NewSessionClaims(userID, orgID, role, email, m.issuer, m.ttl, time.Now()))
}

func (m *Manager) sign(claims Claims) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sessionx: sign session token: %w", err)
	}
	return token, nil
}

// Verify parses and validates a session token, returning its claims.
func (m *Manager) Verify(raw string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalidToken
	}

	if claims.Subject == "" || claims.OrgID == "" {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
