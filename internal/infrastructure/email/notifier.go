// Package email delivers moderation events to reviewers over SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	appmod "github.com/IYair/disclosure-page-uac-sub000/internal/application/moderation"
)

type SMTPConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	FromAddress     string
	FromName        string
	ReviewerAddress string
	// BaseURL is used to build links into the review queue.
	BaseURL string
}

// SMTPNotifier mails the reviewer inbox whenever a submission lands in
// the review queue or a ticket is resolved. Delivery is best effort; the
// caller dispatches it detached from the request.
type SMTPNotifier struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(config SMTPConfig) *SMTPNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPNotifier{
		config: config,
		dialer: dialer,
	}
}

func (n *SMTPNotifier) Notify(ctx context.Context, event appmod.NotificationEvent) error {
	if n.config.ReviewerAddress == "" {
		return nil
	}

	subject, htmlBody, plainBody := n.renderEvent(event)

	return n.sendEmail(n.config.ReviewerAddress, subject, htmlBody, plainBody)
}

func (n *SMTPNotifier) renderEvent(event appmod.NotificationEvent) (subject, htmlBody, plainBody string) {
	ticketURL := fmt.Sprintf("%s/admin/tickets/%d", n.config.BaseURL, event.TicketID)

	switch event.Cause {
	case appmod.NotificationCauseSubmitted:
		subject = fmt.Sprintf("New %s submission pending review: %s", event.ItemType, event.Title)
	case appmod.NotificationCauseApproved:
		subject = fmt.Sprintf("Approved %s: %s", event.ItemType, event.Title)
	case appmod.NotificationCauseRejected:
		subject = fmt.Sprintf("Rejected %s: %s", event.ItemType, event.Title)
	default:
		subject = fmt.Sprintf("Moderation update for %s: %s", event.ItemType, event.Title)
	}

	htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>Item type: %s</p>
			<p>Ticket: <a href="%s">#%d</a></p>
		</body>
		</html>
	`, subject, event.ItemType, ticketURL, event.TicketID)

	plainBody = fmt.Sprintf(`%s

Item type: %s
Ticket: %s
`, subject, event.ItemType, ticketURL)

	return subject, htmlBody, plainBody
}

func (n *SMTPNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(n.config.FromAddress, n.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
