// Package notify delivers invitation emails. Delivery is best-effort: the
// invitation row is already committed when Send runs, so a failed send leaves
// a resendable invitation rather than rolling anything back.
package notify

import (
	"context"
	"fmt"
	"html"
)

// Invite is everything the invitation email needs.
type Invite struct {
	ToEmail          string
	OrgName          string
	RegistrationLink string
}

// Sender delivers an invitation notification.
type Sender interface {
	Send(ctx context.Context, inv Invite) error
}

// Subject returns the invitation email subject line.
func Subject() string {
	return "[DashDocs] You are invited to join an organization"
}

// Body renders the invitation email as HTML. The org name is user-chosen
// and must not carry markup into the message.
func Body(inv Invite) string {
	return fmt.Sprintf(`<div>
<h1>Welcome to DashDocs!</h1>
<p>You've been invited to join %s on DashDocs.</p>
<p><a href=%q>Register Now</a></p>
<p>Click the link above to complete your registration.</p>
</div>`, html.EscapeString(inv.OrgName), inv.RegistrationLink)
}
