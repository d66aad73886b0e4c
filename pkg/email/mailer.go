package email

import (
	"context"
	"fmt"
	"time"

	"event-hub/pkg/utils"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Sender is what services depend on; Mailer is the Resend-backed
// implementation.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
	SendAsync(to, subject, body string)
}

type Mailer struct {
	client *resend.Client
	from   string
	log    *zap.Logger
}

func NewMailer(config utils.EmailConfig, log *zap.Logger) *Mailer {
	return &Mailer{
		client: resend.NewClient(config.APIKey),
		from:   config.From,
		log:    log.With(zap.String("component", "mailer")),
	}
}

// Send delivers a transactional email and reports the outcome to the caller
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	m.log.Info("Email sent",
		zap.String("email_id", sent.Id),
		zap.String("to", to),
	)
	return nil
}

// SendAsync delivers fire-and-forget; a failure is logged, never surfaced
func (m *Mailer) SendAsync(to, subject, body string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_ = m.Send(ctx, to, subject, body)
	}()
}
