package sessionx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for session tokens.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Claims are the session-token claims every authenticated request carries.
// Downstream handlers read {Subject, OrgID, Role} to build the acting user,
// so the three travel together: a token never grants a role outside its org.
type Claims struct {
	jwt.RegisteredClaims

	// OrgID is the organization the user belongs to. All authorization
	// decisions are scoped to this tenant.
	OrgID string `json:"org_id"`

	// Role within the organization ("admin", "member" or "staff").
	Role string `json:"role"`

	// Email of the authenticated user.
	Email string `json:"email,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a session token.
func NewSessionClaims(
	userID, orgID, role, email string,
	issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        newJTI(),
		},
		OrgID: orgID,
		Role:  role,
		Email: email,
	}
}

// newJTI returns a URL-safe random identifier for the "jti" claim.
func newJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
