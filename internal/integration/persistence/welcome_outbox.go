package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/account-gate/backend/internal/application/adapter"
	"github.com/account-gate/backend/internal/domain/entity"
	"github.com/account-gate/backend/internal/integration/persistence/model"
)

// welcomeOutbox implements adapter.WelcomeOutbox on the welcome_emails table.
type welcomeOutbox struct {
	db *gorm.DB
}

// NewWelcomeOutbox creates a new welcome outbox backed by db.
func NewWelcomeOutbox(db *gorm.DB) adapter.WelcomeOutbox {
	return &welcomeOutbox{db: db}
}

func (o *welcomeOutbox) Enqueue(ctx context.Context, msg *entity.WelcomeEmail) error {
	if err := o.db.WithContext(ctx).Create(model.WelcomeEmailFromEntity(msg)).Error; err != nil {
		return fmt.Errorf("insert welcome email: %w", err)
	}
	return nil
}

func (o *welcomeOutbox) Due(ctx context.Context, now time.Time, limit int) ([]*entity.WelcomeEmail, error) {
	var rows []model.WelcomeEmailModel
	err := o.db.WithContext(ctx).
		Where("state = ? AND next_attempt_at <= ?", string(entity.WelcomeQueued), now).
		Order("next_attempt_at, queued_at").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select due welcome emails: %w", err)
	}

	due := make([]*entity.WelcomeEmail, 0, len(rows))
	for i := range rows {
		due = append(due, rows[i].ToEntity())
	}
	return due, nil
}

func (o *welcomeOutbox) Save(ctx context.Context, msg *entity.WelcomeEmail) error {
	if err := o.db.WithContext(ctx).Save(model.WelcomeEmailFromEntity(msg)).Error; err != nil {
		return fmt.Errorf("update welcome email %s: %w", msg.ID, err)
	}
	return nil
}
