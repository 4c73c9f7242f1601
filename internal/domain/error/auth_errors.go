// Package error defines domain-specific errors for the account gate.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when signin credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet requirements")

	// ErrPasswordTooLong is returned when a password exceeds what the hasher accepts.
	ErrPasswordTooLong = errors.New("password exceeds maximum length")

	// ErrPersistence is returned when the record store fails for a reason other than a known conflict.
	ErrPersistence = errors.New("persistence failure")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Signup errors (01XXXX)
	ErrCodeEmailExists      AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword     AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidRequest   AuthErrorCode = "AUTH-010005"
	ErrCodePasswordMismatch AuthErrorCode = "AUTH-010006"

	// Signin errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"

	// Store errors (09XXXX)
	ErrCodePersistence AuthErrorCode = "AUTH-090001"
)

// AuthError represents an authentication error with code and message.
// Details carries per-field or per-rule reasons, e.g. the unmet password requirements.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Details []string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err == nil || e.Err.Error() == e.Message {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetails returns the error with the given details attached.
func (e *AuthError) WithDetails(details ...string) *AuthError {
	e.Details = append([]string(nil), details...)
	return e
}

// AuthCode returns the code of the first AuthError in err's chain, or "" if there is none.
func AuthCode(err error) AuthErrorCode {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Code
	}
	return ""
}
