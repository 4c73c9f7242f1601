// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/account-gate/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create inserts a new user. It returns an error wrapping
	// domainerror.ErrEmailAlreadyExists when the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by their email address.
	// It returns domainerror.ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
