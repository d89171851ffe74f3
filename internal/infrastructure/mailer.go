package infrastructure

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"content-service/internal/config"
)

// Mailer sends an email copy of a notification through SendGrid. Without
// credentials it stays disabled and SendNotification is a no-op.
type Mailer struct {
	sender string
	client *sendgrid.Client
}

func NewMailer(cfg config.EmailConfig) *Mailer {
	if !cfg.Complete() {
		return &Mailer{}
	}
	return &Mailer{
		sender: cfg.Sender,
		client: sendgrid.NewSendClient(cfg.APIKey),
	}
}

func (m *Mailer) Enabled() bool {
	return m.client != nil
}

func (m *Mailer) SendNotification(recipientEmail, title, message string) error {
	if m.client == nil {
		return nil
	}

	subject := title
	if subject == "" {
		subject = "New notification"
	}

	from := mail.NewEmail("Notifications", m.sender)
	to := mail.NewEmail("", recipientEmail)
	content := mail.NewSingleEmail(from, subject, to, message, fmt.Sprintf("<p>%s</p>", message))

	response, err := m.client.Send(content)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid responded with status %d", response.StatusCode)
	}

	log.Printf("Notification email sent to %s", recipientEmail)
	return nil
}
