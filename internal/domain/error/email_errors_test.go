package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsPermanentDelivery(t *testing.T) {
	cause := errors.New("422 invalid recipient")

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "permanent", err: &DeliveryError{Permanent: true, Err: cause}, want: true},
		{name: "wrapped permanent", err: fmt.Errorf("send: %w", &DeliveryError{Permanent: true, Err: cause}), want: true},
		{name: "temporary", err: &DeliveryError{Err: cause}},
		{name: "plain error", err: cause},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPermanentDelivery(tt.err); got != tt.want {
				t.Errorf("IsPermanentDelivery(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestDeliveryError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &DeliveryError{Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected DeliveryError to unwrap to its cause")
	}
	if err.Error() != "temporary delivery failure: connection reset" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
