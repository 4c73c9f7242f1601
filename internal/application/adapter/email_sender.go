package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueWelcomeEmail queues the message sent after a successful signup.
	QueueWelcomeEmail(ctx context.Context, input QueueWelcomeInput) error
}

// QueueWelcomeInput represents the input for queueing a welcome email.
type QueueWelcomeInput struct {
	UserEmail string
	FirstName string
	FullName  string
}
