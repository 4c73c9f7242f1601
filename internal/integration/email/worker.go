package email

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/account-gate/backend/internal/application/adapter"
	"github.com/account-gate/backend/internal/domain/entity"
	domainerror "github.com/account-gate/backend/internal/domain/error"
	"github.com/account-gate/backend/internal/integration/email/templates"
)

const welcomeSubject = "Welcome to Account Gate"

// WorkerConfig holds configuration for the email worker.
// Zero values fall back to a 5s poll interval and batches of 10.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	AppBaseURL   string
}

// Worker delivers queued welcome emails through an EmailSender.
type Worker struct {
	outbox    adapter.WelcomeOutbox
	sender    adapter.EmailSender
	renderer  *templates.Renderer
	signinURL string
	interval  time.Duration
	batchSize int
	now       func() time.Time
}

// NewWorker creates a new email worker.
func NewWorker(outbox adapter.WelcomeOutbox, sender adapter.EmailSender, renderer *templates.Renderer, cfg WorkerConfig) *Worker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	return &Worker{
		outbox:    outbox,
		sender:    sender,
		renderer:  renderer,
		signinURL: strings.TrimRight(cfg.AppBaseURL, "/") + "/signin",
		interval:  cfg.PollInterval,
		batchSize: cfg.BatchSize,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Run flushes the outbox every poll interval until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	slog.Info("Email worker started", "poll_interval", w.interval, "batch_size", w.batchSize)
	defer slog.Info("Email worker stopped")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.Flush(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Flush makes one delivery attempt for every due message, up to the batch
// size, and returns how many were delivered.
func (w *Worker) Flush(ctx context.Context) int {
	due, err := w.outbox.Due(ctx, w.now(), w.batchSize)
	if err != nil {
		slog.Error("Failed to load due welcome emails", "error", err)
		return 0
	}

	delivered := 0
	for _, msg := range due {
		if ctx.Err() != nil {
			break
		}
		if w.attempt(ctx, msg) {
			delivered++
		}
	}
	return delivered
}

func (w *Worker) attempt(ctx context.Context, msg *entity.WelcomeEmail) bool {
	providerID, err := w.deliver(ctx, msg)
	if err != nil {
		msg.Failed(err, domainerror.IsPermanentDelivery(err), w.now())
	} else {
		msg.Delivered(providerID, w.now())
	}

	if saveErr := w.outbox.Save(ctx, msg); saveErr != nil {
		slog.Error("Failed to record welcome email attempt", "id", msg.ID, "error", saveErr)
	}

	switch msg.State {
	case entity.WelcomeDelivered:
		slog.Info("Welcome email delivered", "id", msg.ID, "provider_id", providerID)
		return true
	case entity.WelcomeAbandoned:
		slog.Warn("Welcome email abandoned", "id", msg.ID, "attempts", msg.Attempts, "error", err)
	default:
		slog.Info("Welcome email will be retried", "id", msg.ID, "next_attempt_at", msg.NextAttemptAt, "error", err)
	}
	return false
}

func (w *Worker) deliver(ctx context.Context, msg *entity.WelcomeEmail) (string, error) {
	html, text, err := w.renderer.Welcome(templates.WelcomeData{
		FirstName: msg.FirstName,
		SigninURL: w.signinURL,
	})
	if err != nil {
		return "", &domainerror.DeliveryError{Permanent: true, Err: err}
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      msg.Recipient,
		Name:    msg.FullName,
		Subject: welcomeSubject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return "", err
	}
	return result.ProviderID, nil
}
