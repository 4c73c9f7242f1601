package entity

import (
	"time"

	"github.com/google/uuid"
)

// WelcomeState tracks a welcome email through delivery.
type WelcomeState string

const (
	WelcomeQueued    WelcomeState = "queued"
	WelcomeDelivered WelcomeState = "delivered"
	WelcomeAbandoned WelcomeState = "abandoned"
)

// MaxWelcomeAttempts bounds how often delivery is tried before giving up.
const MaxWelcomeAttempts = 3

// welcomeBackoff[n] is the wait after the (n+1)th failed attempt.
var welcomeBackoff = [...]time.Duration{time.Minute, 5 * time.Minute}

// WelcomeEmail is the one message sent to a newly registered account.
type WelcomeEmail struct {
	ID            uuid.UUID
	Recipient     string
	FirstName     string
	FullName      string
	State         WelcomeState
	Attempts      int
	LastError     string
	ProviderID    string
	QueuedAt      time.Time
	NextAttemptAt time.Time
	SettledAt     *time.Time
}

// NewWelcomeEmail creates a queued welcome email, due immediately.
func NewWelcomeEmail(recipient, firstName, fullName string, now time.Time) *WelcomeEmail {
	return &WelcomeEmail{
		ID:            uuid.New(),
		Recipient:     recipient,
		FirstName:     firstName,
		FullName:      fullName,
		State:         WelcomeQueued,
		QueuedAt:      now,
		NextAttemptAt: now,
	}
}

// Due reports whether the message is waiting and its next attempt time has come.
func (w *WelcomeEmail) Due(now time.Time) bool {
	return w.State == WelcomeQueued && !now.Before(w.NextAttemptAt)
}

// Delivered settles the message with the provider's id.
func (w *WelcomeEmail) Delivered(providerID string, now time.Time) {
	w.Attempts++
	w.State = WelcomeDelivered
	w.ProviderID = providerID
	w.LastError = ""
	w.SettledAt = &now
}

// Failed records an unsuccessful attempt. A permanent failure or the last
// allowed attempt abandons the message; otherwise it waits for the backoff.
func (w *WelcomeEmail) Failed(err error, permanent bool, now time.Time) {
	w.Attempts++
	w.LastError = err.Error()

	if permanent || w.Attempts >= MaxWelcomeAttempts {
		w.State = WelcomeAbandoned
		w.SettledAt = &now
		return
	}

	step := w.Attempts - 1
	if step >= len(welcomeBackoff) {
		step = len(welcomeBackoff) - 1
	}
	w.NextAttemptAt = now.Add(welcomeBackoff[step])
}
