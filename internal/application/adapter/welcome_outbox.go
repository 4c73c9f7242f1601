package adapter

import (
	"context"
	"time"

	"github.com/account-gate/backend/internal/domain/entity"
)

// WelcomeOutbox holds welcome emails until they are delivered or abandoned.
type WelcomeOutbox interface {
	Enqueue(ctx context.Context, msg *entity.WelcomeEmail) error

	// Due returns up to limit queued messages whose next attempt is not after now,
	// oldest first.
	Due(ctx context.Context, now time.Time, limit int) ([]*entity.WelcomeEmail, error)

	Save(ctx context.Context, msg *entity.WelcomeEmail) error
}
