// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"

	"github.com/account-gate/backend/config"
	"github.com/account-gate/backend/internal/application/adapter"
	"github.com/account-gate/backend/internal/application/usecase/auth"
	"github.com/account-gate/backend/internal/infra/db"
	"github.com/account-gate/backend/internal/infra/server/router"
	"github.com/account-gate/backend/internal/integration/adapters"
	"github.com/account-gate/backend/internal/integration/email"
	"github.com/account-gate/backend/internal/integration/email/templates"
	"github.com/account-gate/backend/internal/integration/entrypoint/controller"
	"github.com/account-gate/backend/internal/integration/entrypoint/middleware"
	"github.com/account-gate/backend/internal/integration/entrypoint/view"
	"github.com/account-gate/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Database    *db.Database
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The email worker is nil unless the email subsystem is enabled.
func NewInjector(cfg *config.Config, database *db.Database) (*Injector, error) {
	userRepo := persistence.NewUserRepository(database.DB())
	passwordService := adapters.NewPasswordService(cfg.Password.BcryptCost)

	emailService, worker, err := newEmail(cfg, database)
	if err != nil {
		return nil, err
	}

	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, emailService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService)

	pages, err := view.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	flash := middleware.NewFlash([]byte(cfg.Flash.Secret), cfg.Flash.CookieSecure)

	r := router.NewRouter(
		pages,
		flash,
		controller.NewHealthController(database),
		controller.NewAuthController(registerUseCase, loginUseCase),
		controller.NewPageController(registerUseCase, loginUseCase, flash),
	)

	return &Injector{
		Config:      cfg,
		Database:    database,
		Router:      r,
		EmailWorker: worker,
	}, nil
}

func newEmail(cfg *config.Config, database *db.Database) (adapter.EmailService, *email.Worker, error) {
	if !cfg.Email.WorkerEnabled {
		slog.Info("Email subsystem disabled")
		return nil, nil, nil
	}
	if cfg.Email.ResendAPIKey == "" {
		slog.Warn("EMAIL_WORKER_ENABLED is set but RESEND_API_KEY is empty, welcome emails are disabled")
		return nil, nil, nil
	}

	outbox := persistence.NewWelcomeOutbox(database.DB())

	sender, err := email.NewResendClient(
		cfg.Email.ResendAPIKey,
		cfg.Email.ResendBaseURL,
		cfg.Email.FromName,
		cfg.Email.FromEmail,
	)
	if err != nil {
		return nil, nil, err
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, nil, err
	}

	worker := email.NewWorker(outbox, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
		AppBaseURL:   cfg.Email.AppBaseURL,
	})

	return email.NewService(outbox), worker, nil
}
