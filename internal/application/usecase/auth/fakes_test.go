package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/account-gate/backend/internal/application/adapter"
	"github.com/account-gate/backend/internal/domain/entity"
	domainerror "github.com/account-gate/backend/internal/domain/error"
)

// fakeUserRepository is an in-memory UserRepository keyed by email.
type fakeUserRepository struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	createErr error
	findErr   error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.users[user.Email]; exists {
		return fmt.Errorf("insert user: %w", domainerror.ErrEmailAlreadyExists)
	}
	stored := *user
	r.users[user.Email] = &stored
	return nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

// fakePasswordService hashes by prefixing, which keeps tests fast and readable.
type fakePasswordService struct {
	mu          sync.Mutex
	hashErr     error
	hashCalls   int
	verifyCalls int
}

var errPasswordMismatch = errors.New("password mismatch")

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	s.mu.Lock()
	s.hashCalls++
	s.mu.Unlock()

	if s.hashErr != nil {
		return "", s.hashErr
	}
	return "hashed:" + password, nil
}

func (s *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	s.mu.Lock()
	s.verifyCalls++
	s.mu.Unlock()

	if hashedPassword != "hashed:"+password {
		return errPasswordMismatch
	}
	return nil
}

// fakeEmailService records queued welcome emails.
type fakeEmailService struct {
	mu     sync.Mutex
	queued []adapter.QueueWelcomeInput
	err    error
}

func (s *fakeEmailService) QueueWelcomeEmail(_ context.Context, input adapter.QueueWelcomeInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	s.queued = append(s.queued, input)
	return nil
}

var (
	_ adapter.UserRepository  = (*fakeUserRepository)(nil)
	_ adapter.PasswordService = (*fakePasswordService)(nil)
	_ adapter.EmailService    = (*fakeEmailService)(nil)
)
