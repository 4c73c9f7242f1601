package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/account-gate/backend/internal/application/adapter"
	"github.com/account-gate/backend/internal/domain/entity"
	domainerror "github.com/account-gate/backend/internal/domain/error"
)

// LoginUserInput represents the input for user signin.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of an accepted signin.
type LoginUserOutput struct {
	User *entity.User
}

// LoginUserUseCase handles user signin logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService

	// dummyHash is compared against when the email is unknown.
	dummyHash string
}

const dummyPassword = "timing-equaliser-Password1"

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *LoginUserUseCase {
	dummyHash, err := passwordService.HashPassword(dummyPassword)
	if err != nil {
		slog.Warn("Failed to build timing hash, unknown emails will hash instead", "error", err)
		dummyHash = ""
	}

	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		dummyHash:       dummyHash,
	}
}

// Execute performs the user signin.
// A nil error means the signin was accepted. Unknown emails and wrong
// passwords produce the same error.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			uc.spendHashWork(input.Password)
			return nil, invalidCredentials()
		}
		slog.Error("Failed to look up user", "error", err)
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePersistence,
			"failed to look up account",
			errors.Join(domainerror.ErrPersistence, err),
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	return &LoginUserOutput{User: user}, nil
}

// spendHashWork costs about as much as checking a real password.
func (uc *LoginUserUseCase) spendHashWork(password string) {
	if uc.dummyHash == "" {
		_, _ = uc.passwordService.HashPassword(password)
		return
	}
	_ = uc.passwordService.VerifyPassword(uc.dummyHash, password)
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}
