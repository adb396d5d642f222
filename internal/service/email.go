package service

import (
	"context"
	"fmt"

	"library-backend/internal/config"
	"library-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(cfg config.EmailConfig) EmailService {
	return &sendGridService{
		apiKey:    cfg.APIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *sendGridService) SendOverdueReminder(ctx context.Context, email, name, bookTitle string, daysOverdue int32) error {
	subject := fmt.Sprintf("Overdue reminder: %s", bookTitle)
	plainText := fmt.Sprintf(
		"Hello %s,\n\nThe book %q is %d day(s) overdue. Please return it as soon as possible to avoid further fines.\n\nYour library",
		name, bookTitle, daysOverdue)
	htmlContent := fmt.Sprintf(
		"<p>Hello %s,</p><p>The book <strong>%s</strong> is <strong>%d day(s)</strong> overdue. Please return it as soon as possible to avoid further fines.</p><p>Your library</p>",
		name, bookTitle, daysOverdue)
	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *sendGridService) SendFineNotice(ctx context.Context, email, name, description string, amountCents int64) error {
	subject := "You have an outstanding library fine"
	amount := fmt.Sprintf("%d.%02d", amountCents/100, amountCents%100)
	plainText := fmt.Sprintf(
		"Hello %s,\n\nA fine of %s has been issued to your account.\n%s\n\nPlease settle it at the front desk; unpaid fines block further borrowing.\n\nYour library",
		name, amount, description)
	htmlContent := fmt.Sprintf(
		"<p>Hello %s,</p><p>A fine of <strong>%s</strong> has been issued to your account.</p><p>%s</p><p>Please settle it at the front desk; unpaid fines block further borrowing.</p><p>Your library</p>",
		name, amount, description)
	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *sendGridService) send(ctx context.Context, to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	logger.Debug("Email sent", "to", to, "subject", subject)
	return nil
}
