package error

import "errors"

// ErrWelcomeNotQueued is returned when a welcome email cannot be stored for delivery.
var ErrWelcomeNotQueued = errors.New("welcome email not queued")

// DeliveryError is a failed hand-off to the email provider or renderer.
// Permanent failures are never retried.
type DeliveryError struct {
	Permanent bool
	Err       error
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	if e.Permanent {
		return "permanent delivery failure: " + e.Err.Error()
	}
	return "temporary delivery failure: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// IsPermanentDelivery reports whether err is a DeliveryError that must not be retried.
func IsPermanentDelivery(err error) bool {
	var deliveryErr *DeliveryError
	return errors.As(err, &deliveryErr) && deliveryErr.Permanent
}
