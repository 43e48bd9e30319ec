package mailer

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/mail"
	"net/url"
	"os"

	"github.com/dajohi/goemail"
)

// SMTPConfig carries the connection settings for the direct SMTP driver.
type SMTPConfig struct {
	// Host is "host:port" of the SMTPS server.
	Host     string
	User     string
	Password string

	// FromAddress is the sender, RFC 5322 form ("Name <addr>" accepted).
	FromAddress string

	// CertPath optionally pins the server certificate.
	CertPath string

	// SkipVerify disables TLS certificate verification. Dev only.
	SkipVerify bool
}

// SMTPMailer sends mail directly over SMTPS.
type SMTPMailer struct {
	smtp     *goemail.SMTP
	fromName string
	fromAddr string
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	u, err := url.Parse(fmt.Sprintf("smtps://%s:%s@%s", cfg.User, cfg.Password, cfg.Host))
	if err != nil {
		return nil, fmt.Errorf("parse smtp host: %w", err)
	}

	from, err := mail.ParseAddress(cfg.FromAddress)
	if err != nil {
		return nil, fmt.Errorf("parse from address: %w", err)
	}

	tlsConfig := &tls.Config{InsecureSkipVerify: cfg.SkipVerify}
	if !cfg.SkipVerify && cfg.CertPath != "" {
		cert, err := os.ReadFile(cfg.CertPath)
		if err != nil {
			return nil, fmt.Errorf("read smtp cert: %w", err)
		}
		pool, err := x509.SystemCertPool()
		if err != nil {
			pool = x509.NewCertPool()
		}
		pool.AppendCertsFromPEM(cert)
		tlsConfig.RootCAs = pool
	}

	smtp, err := goemail.NewSMTP(u.String(), tlsConfig)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPMailer{
		smtp:     smtp,
		fromName: from.Name,
		fromAddr: from.Address,
	}, nil
}

func (m *SMTPMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	msg := goemail.NewHTMLMessage(m.fromAddr, subject, htmlBody)
	msg.SetName(m.fromName)
	msg.AddTo(to)
	if err := m.smtp.Send(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
