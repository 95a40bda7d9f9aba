package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "fieldserve/internal/shared/config"
)

// Sender delivers notification emails. Implementations must be safe for
// concurrent use; the notifier calls them from event handlers.
type Sender interface {
	SendTicketAssignedEmail(to, ticketNumber, title string) error
	SendTicketResolvedEmail(to, ticketNumber, resolution string) error
	SendHelpdeskTicketEmail(to, ticketNumber, title string) error
	SendLowStockEmail(to, sku, name string, stock, minStock int) error
}

type SMTPSender struct {
	config *sharedConfig.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPSender(config *sharedConfig.EmailConfig) *SMTPSender {
	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)

	return &SMTPSender{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPSender) SendTicketAssignedEmail(to, ticketNumber, title string) error {
	subject := fmt.Sprintf("Ticket %s assigned to you", ticketNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Assignment</h2>
			<p>Ticket <strong>%s</strong> has been assigned to you:</p>
			<p>%s</p>
			<p>Open the app to review the details and schedule your visit.</p>
		</body>
		</html>
	`, ticketNumber, title)

	plainBody := fmt.Sprintf(`
New Assignment

Ticket %s has been assigned to you:
%s

Open the app to review the details and schedule your visit.
	`, ticketNumber, title)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPSender) SendTicketResolvedEmail(to, ticketNumber, resolution string) error {
	subject := fmt.Sprintf("Ticket %s resolved", ticketNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket Resolved</h2>
			<p>Your ticket <strong>%s</strong> has been resolved.</p>
			<p>Resolution: %s</p>
		</body>
		</html>
	`, ticketNumber, resolution)

	plainBody := fmt.Sprintf(`
Ticket Resolved

Your ticket %s has been resolved.

Resolution: %s
	`, ticketNumber, resolution)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPSender) SendHelpdeskTicketEmail(to, ticketNumber, title string) error {
	subject := fmt.Sprintf("New helpdesk ticket %s", ticketNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Helpdesk Ticket</h2>
			<p>A new helpdesk ticket <strong>%s</strong> has been opened:</p>
			<p>%s</p>
		</body>
		</html>
	`, ticketNumber, title)

	plainBody := fmt.Sprintf(`
New Helpdesk Ticket

A new helpdesk ticket %s has been opened:
%s
	`, ticketNumber, title)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPSender) SendLowStockEmail(to, sku, name string, stock, minStock int) error {
	subject := fmt.Sprintf("Low stock: %s", sku)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Low Stock Alert</h2>
			<p>Item <strong>%s</strong> (%s) is below its minimum stock level.</p>
			<p>Current stock: %d, minimum: %d.</p>
		</body>
		</html>
	`, sku, name, stock, minStock)

	plainBody := fmt.Sprintf(`
Low Stock Alert

Item %s (%s) is below its minimum stock level.
Current stock: %d, minimum: %d.
	`, sku, name, stock, minStock)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPSender) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
