package services

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

// Mailer wraps the SendGrid client. A nil client disables delivery.
type Mailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
	sandbox   bool
}

// NewMailer creates the mailer. Pass an empty apiKey to disable sends.
func NewMailer(apiKey, fromName, fromEmail string, sandbox bool) *Mailer {
	m := &Mailer{fromName: fromName, fromEmail: fromEmail, sandbox: sandbox}
	if apiKey != "" {
		m.client = sendgrid.NewSendClient(apiKey)
	}
	return m
}

func (m *Mailer) Enabled() bool {
	return m.client != nil
}

func (m *Mailer) Send(ctx context.Context, toName, toEmail, subject, plainText, htmlBody string) error {
	if m.client == nil {
		return fmt.Errorf("%w: email delivery is not configured", utils.ErrExternalServiceFailure)
	}

	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	if htmlBody == "" {
		htmlBody = "<pre>" + plainText + "</pre>"
	}
	msg := mail.NewSingleEmail(from, subject, to, plainText, htmlBody)
	msg.TrackingSettings = &mail.TrackingSettings{
		ClickTracking: &mail.ClickTrackingSetting{
			Enable: ptr(false),
		},
	}
	if m.sandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		msg.MailSettings = ms
	}

	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrExternalServiceFailure, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: sendgrid status %d", utils.ErrExternalServiceFailure, resp.StatusCode)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
