package notify

import (
	"context"
	"log/slog"
)

// LogSender writes invitations to the log instead of sending email. Used in
// dev and tests where no Resend API key is configured.
type LogSender struct {
	Logger *slog.Logger
}

func (s *LogSender) Send(ctx context.Context, inv Invite) error {
	s.Logger.Info("invitation email (log sender)",
		"to", inv.ToEmail,
		"org", inv.OrgName,
		"link", inv.RegistrationLink,
	)
	return nil
}
