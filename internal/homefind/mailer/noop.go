package mailer

import (
	"context"

	"github.com/lagoshomes/homefind/pkg/slogx"
)

// NoopMailer is used when no mail credentials are configured. Sends are
// logged and reported as successful so account flows still work in dev.
type NoopMailer struct{}

func NewNoopMailer() *NoopMailer { return &NoopMailer{} }

func (NoopMailer) Send(ctx context.Context, to, subject, _ string) error {
	slogx.FromContext(ctx).Info("mail disabled, dropping message",
		"to", to,
		"subject", subject,
	)
	return nil
}
