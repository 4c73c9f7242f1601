// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/account-gate/backend/internal/application/adapter"
	domainerror "github.com/account-gate/backend/internal/domain/error"
)

// DefaultBcryptCost is used when no cost is configured.
const DefaultBcryptCost = 12

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// passwordService implements the adapter.PasswordService interface.
type passwordService struct {
	cost int
}

// NewPasswordService creates a new bcrypt password service.
// Costs outside bcrypt's accepted range are clamped to it.
func NewPasswordService(cost int) adapter.PasswordService {
	switch {
	case cost == 0:
		cost = DefaultBcryptCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &passwordService{cost: cost}
}

// HashPassword hashes a plain text password using bcrypt with a random salt.
func (s *passwordService) HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", domainerror.ErrPasswordTooLong
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domainerror.ErrPasswordTooLong
		}
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a hashed password.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
