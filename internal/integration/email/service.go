// Package email queues and delivers the welcome email sent after signup.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/account-gate/backend/internal/application/adapter"
	"github.com/account-gate/backend/internal/domain/entity"
	domainerror "github.com/account-gate/backend/internal/domain/error"
)

// Service puts welcome emails in the outbox for the Worker to deliver.
type Service struct {
	outbox adapter.WelcomeOutbox
}

// NewService creates a new email service.
func NewService(outbox adapter.WelcomeOutbox) *Service {
	return &Service{outbox: outbox}
}

// QueueWelcomeEmail queues the welcome email for a newly registered user.
func (s *Service) QueueWelcomeEmail(ctx context.Context, input adapter.QueueWelcomeInput) error {
	msg := entity.NewWelcomeEmail(input.UserEmail, input.FirstName, input.FullName, time.Now().UTC())
	if err := s.outbox.Enqueue(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", domainerror.ErrWelcomeNotQueued, err)
	}
	return nil
}

var _ adapter.EmailService = (*Service)(nil)
