// Package mailer delivers transactional email for account activation and
// password reset. Delivery is pluggable: a direct SMTP client, a Kafka
// producer handing off to an external mail worker, or a disabled no-op.
package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
)

// Mailer sends a single HTML email. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// ActivationEmail renders the account activation message body.
func ActivationEmail(username, link string) (subject, body string, err error) {
	body, err = render("activation.html", map[string]string{
		"Username": username,
		"Link":     link,
	})
	return "Activate your HomeFind account", body, err
}

// ResetEmail renders the password reset message body.
func ResetEmail(username, link string) (subject, body string, err error) {
	body, err = render("reset.html", map[string]string{
		"Username": username,
		"Link":     link,
	})
	return "Reset your HomeFind password", body, err
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
