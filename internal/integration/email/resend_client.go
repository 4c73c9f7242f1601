package email

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/account-gate/backend/internal/application/adapter"
	domainerror "github.com/account-gate/backend/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client. An empty baseURL keeps the SDK default.
func NewResendClient(apiKey, baseURL, fromName, fromEmail string) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if baseURL != "" {
		parsed, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid resend base url: %w", err)
		}
		client.BaseURL = parsed
	}

	return &ResendClient{
		client:    client,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// Send sends an email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	to := input.To
	if input.Name != "" {
		to = fmt.Sprintf("%s <%s>", input.Name, input.To)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{to},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, &domainerror.DeliveryError{Permanent: isPermanentError(err), Err: err}
	}

	return &adapter.SendEmailResult{
		ProviderID: resp.Id,
	}, nil
}

// permanentErrorPatterns match the client-side failures Resend reports
// (401, 403, 422). Rate limits and 5xx responses stay retryable.
var permanentErrorPatterns = []string{
	"401",
	"403",
	"422",
	"unauthorized",
	"forbidden",
	"validation",
	"invalid",
	"bad request",
}

// isPermanentError checks if the error should not be retried.
// The SDK only exposes provider failures as formatted messages.
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range permanentErrorPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

var _ adapter.EmailSender = (*ResendClient)(nil)
