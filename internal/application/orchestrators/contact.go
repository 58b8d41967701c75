package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"smartevents/internal/adapters/email"
)

// ContactInput carries a contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactDeps holds dependencies for the contact form.
type ContactDeps struct {
	Sender email.Sender
	To     string // campus inbox receiving contact mail
	From   string
}

// MaxMessageLength bounds contact messages.
const MaxMessageLength = 4000

// ExecuteContact validates a contact submission and delivers it to the
// campus inbox. Visitor-supplied text is escaped before it lands in the
// HTML body.
func ExecuteContact(ctx context.Context, input ContactInput, deps ContactDeps) error {
	if strings.TrimSpace(input.Name) == "" {
		return errors.New("name is required")
	}
	if !strings.Contains(input.Email, "@") {
		return errors.New("a valid email is required")
	}
	if strings.TrimSpace(input.Message) == "" {
		return errors.New("message is required")
	}
	if len(input.Message) > MaxMessageLength {
		return errors.New("message cannot exceed 4000 characters")
	}

	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		subject = "Contact form message"
	}

	body := fmt.Sprintf("<p><strong>%s</strong> (%s) wrote:</p><p>%s</p>",
		html.EscapeString(input.Name),
		html.EscapeString(input.Email),
		html.EscapeString(input.Message))

	_, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{deps.To},
		From:    deps.From,
		Subject: subject,
		HTML:    body,
		ReplyTo: input.Email,
	})
	if err != nil {
		return errors.New("your message could not be sent, please try again later")
	}

	slog.Info("contact_message_sent", "from", input.Email)
	return nil
}
