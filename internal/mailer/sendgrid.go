package mailer

import (
	"context"
	"fmt"
	"net/http"

	"effi-track-backend/internal/config"
	"effi-track-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendgridMailer sends email through the SendGrid v3 API
type SendgridMailer struct {
	key  string
	from *sgmail.Email
	log  *logger.Logger
}

var _ Mailer = (*SendgridMailer)(nil)

// NewSendgridMailer creates a SendGrid-backed mailer from config
func NewSendgridMailer(cfg *config.Config) *SendgridMailer {
	return &SendgridMailer{
		key:  cfg.SendgridAPIKey,
		from: sgmail.NewEmail(cfg.MailFromName, cfg.MailFromAddress),
		log:  logger.WithComponent("mailer"),
	}
}

// Configured reports whether an API key is present
func (m *SendgridMailer) Configured() bool {
	return m.key != ""
}

// Send dispatches one message through SendGrid. SendGrid treats any 2xx as
// accepted; everything else is a per-message failure.
func (m *SendgridMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	message := sgmail.NewV3Mail()
	message.SetFrom(m.from)
	message.Subject = subject

	p := sgmail.NewPersonalization()
	p.AddTos(sgmail.NewEmail("", to))
	message.AddPersonalizations(p)
	message.AddContent(sgmail.NewContent("text/html", htmlBody))

	req := sendgrid.GetRequest(m.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(message)

	res, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid request: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		m.log.WithFields(map[string]interface{}{
			"to":     to,
			"status": res.StatusCode,
		}).Warn("sendgrid rejected message")
		return fmt.Errorf("sendgrid returned status %d", res.StatusCode)
	}
	return nil
}
