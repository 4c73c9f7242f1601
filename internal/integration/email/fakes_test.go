package email

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/account-gate/backend/internal/application/adapter"
	"github.com/account-gate/backend/internal/domain/entity"
	domainerror "github.com/account-gate/backend/internal/domain/error"
)

// memoryOutbox is an in-memory WelcomeOutbox.
type memoryOutbox struct {
	mu         sync.Mutex
	messages   map[uuid.UUID]entity.WelcomeEmail
	enqueueErr error
}

func newMemoryOutbox() *memoryOutbox {
	return &memoryOutbox{messages: make(map[uuid.UUID]entity.WelcomeEmail)}
}

func (o *memoryOutbox) Enqueue(_ context.Context, msg *entity.WelcomeEmail) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.enqueueErr != nil {
		return o.enqueueErr
	}
	o.messages[msg.ID] = *msg
	return nil
}

func (o *memoryOutbox) Due(_ context.Context, now time.Time, limit int) ([]*entity.WelcomeEmail, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var due []*entity.WelcomeEmail
	for _, msg := range o.messages {
		if msg.Due(now) {
			m := msg
			due = append(due, &m)
		}
	}
	sort.Slice(due, func(i, k int) bool { return due[i].NextAttemptAt.Before(due[k].NextAttemptAt) })
	if len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (o *memoryOutbox) Save(_ context.Context, msg *entity.WelcomeEmail) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages[msg.ID] = *msg
	return nil
}

// only returns the single message in the outbox.
func (o *memoryOutbox) only() (*entity.WelcomeEmail, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.messages) != 1 {
		return nil, fmt.Errorf("expected exactly one message, got %d", len(o.messages))
	}
	for _, msg := range o.messages {
		return &msg, nil
	}
	return nil, errors.New("unreachable")
}

// recordingSender records sent emails instead of delivering them.
type recordingSender struct {
	mu        sync.Mutex
	sent      []adapter.SendEmailInput
	failErr   error
	permanent bool
}

func (s *recordingSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		return nil, &domainerror.DeliveryError{Permanent: s.permanent, Err: s.failErr}
	}
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ProviderID: fmt.Sprintf("msg-%d", len(s.sent))}, nil
}

func (s *recordingSender) fail(err error, permanent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr, s.permanent = err, permanent
}

func (s *recordingSender) sentEmails() []adapter.SendEmailInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]adapter.SendEmailInput(nil), s.sent...)
}

var (
	_ adapter.WelcomeOutbox = (*memoryOutbox)(nil)
	_ adapter.EmailSender   = (*recordingSender)(nil)
)
