package mailer

import (
	"context"

	"effi-track-backend/internal/logger"
)

// ConsoleMailer logs messages instead of sending them. Used in development
// when no SendGrid key is configured.
type ConsoleMailer struct {
	log *logger.Logger
}

var _ Mailer = (*ConsoleMailer)(nil)

// NewConsoleMailer creates a console mailer
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{log: logger.WithComponent("mailer")}
}

// Configured always reports true; the console never lacks credentials
func (m *ConsoleMailer) Configured() bool {
	return true
}

// Send logs the message and reports success
func (m *ConsoleMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.log.WithFields(map[string]interface{}{
		"to":      to,
		"subject": subject,
	}).Info("console mailer: ", htmlBody)
	return nil
}
