// Package mailer provides the outbound mail transport boundary. The notifier
// treats it as a capability: one send operation per message, no retries.
package mailer

import (
	"context"

	"effi-track-backend/internal/config"
	"effi-track-backend/internal/logger"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer_mocks.go -package=mocks

// Mailer sends a single email message. Implementations report per-message
// failure through the returned error and must honor context cancellation.
type Mailer interface {
	// Send dispatches one message. A non-nil error means this message was
	// not delivered; it says nothing about other messages.
	Send(ctx context.Context, to, subject, htmlBody string) error

	// Configured reports whether the transport has the credentials it needs.
	// An unconfigured transport is a configuration error for the caller,
	// not a per-message failure.
	Configured() bool
}

// FromConfig selects the transport for the current environment. Only
// development without an API key falls back to the console transport; every
// other environment gets SendGrid, so a missing key there surfaces as a
// configuration error at run time instead of a silently logged batch.
func FromConfig(cfg *config.Config) Mailer {
	if cfg.SendgridAPIKey == "" && cfg.IsDevelopment() {
		logger.WithComponent("mailer").Warn("SENDGRID_API_KEY not set, using console mail transport")
		return NewConsoleMailer()
	}
	return NewSendgridMailer(cfg)
}
