// Package auth contains the signup and signin use cases.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/account-gate/backend/internal/application/adapter"
	"github.com/account-gate/backend/internal/domain/entity"
	domainerror "github.com/account-gate/backend/internal/domain/error"
	"github.com/account-gate/backend/internal/domain/valueobject"
)

// passwordTooLongDetail is reported when a password passes the policy but cannot be hashed.
const passwordTooLongDetail = "Password must be at most 72 bytes long."

// RegisterUserInput represents the raw fields of a submitted signup form.
type RegisterUserInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// RegisterUserOutput represents the output of an accepted signup.
type RegisterUserOutput struct {
	User *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	emailService    adapter.EmailService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
// emailService may be nil, in which case no welcome email is queued.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	emailService adapter.EmailService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		emailService:    emailService,
	}
}

// Execute performs the user registration.
// A nil error means the signup was accepted.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if input.Password != input.ConfirmPassword {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePasswordMismatch,
			"passwords do not match",
			domainerror.ErrPasswordMismatch,
		)
	}

	if check := valueobject.CheckPassword(input.Password); !check.Valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet requirements",
			domainerror.ErrWeakPassword,
		).WithDetails(check.Messages()...)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		if errors.Is(err, domainerror.ErrPasswordTooLong) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeWeakPassword,
				"password does not meet requirements",
				domainerror.ErrWeakPassword,
			).WithDetails(passwordTooLongDetail)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePersistence,
			"failed to store account",
			errors.Join(domainerror.ErrPersistence, err),
		)
	}

	user := entity.NewUser(input.FirstName, input.LastName, input.Email, passwordHash)

	// The unique index on email is the only duplicate check, so concurrent
	// signups for the same address are decided by the store.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeEmailExists,
				"an account with this email already exists",
				domainerror.ErrEmailAlreadyExists,
			)
		}
		slog.Error("Failed to create user", "error", err)
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePersistence,
			"failed to store account",
			errors.Join(domainerror.ErrPersistence, err),
		)
	}

	uc.queueWelcomeEmail(ctx, user)

	return &RegisterUserOutput{User: user}, nil
}

// queueWelcomeEmail is best effort; the account already exists at this point.
func (uc *RegisterUserUseCase) queueWelcomeEmail(ctx context.Context, user *entity.User) {
	if uc.emailService == nil {
		return
	}

	err := uc.emailService.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{
		UserEmail: user.Email,
		FirstName: user.FirstName,
		FullName:  user.FullName(),
	})
	if err != nil {
		slog.Warn("Failed to queue welcome email",
			"user_id", user.ID,
			"error", err,
		)
	}
}
