package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/account-gate/backend/internal/domain/entity"
)

// WelcomeEmailModel represents the welcome_emails table.
// The (state, next_attempt_at) index serves the worker's due query.
type WelcomeEmailModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Recipient     string     `gorm:"type:varchar(255);not null"`
	FirstName     string     `gorm:"type:varchar(100)"`
	FullName      string     `gorm:"type:varchar(201)"`
	State         string     `gorm:"type:varchar(20);not null;index:idx_welcome_due,priority:1"`
	Attempts      int        `gorm:"not null;default:0"`
	LastError     string     `gorm:"type:text"`
	ProviderID    string     `gorm:"type:varchar(100)"`
	QueuedAt      time.Time  `gorm:"not null"`
	NextAttemptAt time.Time  `gorm:"not null;index:idx_welcome_due,priority:2"`
	SettledAt     *time.Time
}

// TableName returns the table name for the WelcomeEmailModel.
func (WelcomeEmailModel) TableName() string {
	return "welcome_emails"
}

// ToEntity converts the row to a domain WelcomeEmail.
func (m *WelcomeEmailModel) ToEntity() *entity.WelcomeEmail {
	return &entity.WelcomeEmail{
		ID:            m.ID,
		Recipient:     m.Recipient,
		FirstName:     m.FirstName,
		FullName:      m.FullName,
		State:         entity.WelcomeState(m.State),
		Attempts:      m.Attempts,
		LastError:     m.LastError,
		ProviderID:    m.ProviderID,
		QueuedAt:      m.QueuedAt,
		NextAttemptAt: m.NextAttemptAt,
		SettledAt:     m.SettledAt,
	}
}

// WelcomeEmailFromEntity creates a row from a domain WelcomeEmail.
func WelcomeEmailFromEntity(msg *entity.WelcomeEmail) *WelcomeEmailModel {
	return &WelcomeEmailModel{
		ID:            msg.ID,
		Recipient:     msg.Recipient,
		FirstName:     msg.FirstName,
		FullName:      msg.FullName,
		State:         string(msg.State),
		Attempts:      msg.Attempts,
		LastError:     msg.LastError,
		ProviderID:    msg.ProviderID,
		QueuedAt:      msg.QueuedAt,
		NextAttemptAt: msg.NextAttemptAt,
		SettledAt:     msg.SettledAt,
	}
}
