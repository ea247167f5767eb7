package service

import (
	"context"
	"fmt"

	"star-gestao-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridMailer struct {
	apiKey     string
	fromEmail  string
	fromName   string
	recipients []string
}

func NewSendGridMailer(apiKey, fromEmail, fromName string, recipients []string) Mailer {
	return &sendGridMailer{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		recipients: recipients,
	}
}

func (m *sendGridMailer) Send(ctx context.Context, subject, plainText, html string) error {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(m.fromName, m.fromEmail))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	for _, to := range m.recipients {
		personalization.AddTos(mail.NewEmail("", to))
	}
	message.AddPersonalizations(personalization)
	message.AddContent(mail.NewContent("text/plain", plainText), mail.NewContent("text/html", html))

	logger.ExternalServiceCall("sendgrid", "Send", "recipients", len(m.recipients))
	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		err = fmt.Errorf("failed to send email: %w", err)
		logger.ExternalServiceResult("sendgrid", "Send", err)
		return err
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "Send", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "Send", nil, "status", response.StatusCode)
	return nil
}
