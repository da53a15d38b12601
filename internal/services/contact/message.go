package contact

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

const notSpecified = "Not specified"

// Message is one outbound notification email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// Addressing holds the envelope settings for notification emails.
type Addressing struct {
	From      string
	Recipient string
}

// DefaultAddressing mirrors the addresses the site has always used.
func DefaultAddressing() Addressing {
	return Addressing{
		From:      "True Lux Construction <onboarding@resend.dev>",
		Recipient: "jordan@trueluxconstruction.com",
	}
}

// ComposeMessage renders the notification email for a validated submission.
func ComposeMessage(ctx context.Context, addressing Addressing, s Submission) (Message, error) {
	defaults := DefaultAddressing()
	from := strings.TrimSpace(addressing.From)
	if from == "" {
		from = defaults.From
	}
	recipient := strings.TrimSpace(addressing.Recipient)
	if recipient == "" {
		recipient = defaults.Recipient
	}

	var body bytes.Buffer
	if err := NotificationEmail(s).Render(ctx, &body); err != nil {
		return Message{}, fmt.Errorf("render notification email: %w", err)
	}
	return Message{
		From:    from,
		To:      []string{recipient},
		ReplyTo: s.Email,
		Subject: "New Consultation Request from " + s.Name,
		HTML:    body.String(),
	}, nil
}

func descriptionLines(description string) []string {
	lines := strings.Split(description, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}

func orNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return notSpecified
	}
	return value
}
