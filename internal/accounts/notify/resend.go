package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers invitation emails through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender builds a sender. The from address uses the configured
// sending domain, e.g. "DashDocs <onboarding@example.com>".
func NewResendSender(apiKey, domain string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   fmt.Sprintf("DashDocs <onboarding@%s>", domain),
	}
}

func (s *ResendSender) Send(ctx context.Context, inv Invite) error {
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{inv.ToEmail},
		Subject: Subject(),
		Html:    Body(inv),
	})
	if err != nil {
		return fmt.Errorf("notify: resend send: %w", err)
	}
	return nil
}
