// Package valueobject contains domain value objects for the account gate.
package valueobject

import (
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the minimum number of characters a password must have.
const MinPasswordLength = 8

// PasswordRequirement identifies a single password rule.
type PasswordRequirement string

const (
	RequirementLength    PasswordRequirement = "length"
	RequirementLowercase PasswordRequirement = "lowercase"
	RequirementUppercase PasswordRequirement = "uppercase"
	RequirementEndDigit  PasswordRequirement = "end_digit"
)

var requirementMessages = map[PasswordRequirement]string{
	RequirementLength:    "Password should be at least 8 characters.",
	RequirementLowercase: "Password must contain at least one lowercase letter.",
	RequirementUppercase: "Password must contain at least one uppercase letter.",
	RequirementEndDigit:  "Password must end with a number.",
}

// Message returns the human-readable description of the requirement.
func (r PasswordRequirement) Message() string {
	return requirementMessages[r]
}

// PasswordCheck is the outcome of checking a password against the policy.
type PasswordCheck struct {
	Valid bool
	// Unmet lists failed rules in the order length, lowercase, uppercase, end_digit.
	Unmet []PasswordRequirement
}

// Messages returns the messages of the unmet requirements, in order.
func (c PasswordCheck) Messages() []string {
	messages := make([]string, 0, len(c.Unmet))
	for _, r := range c.Unmet {
		messages = append(messages, r.Message())
	}
	return messages
}

// CheckPassword evaluates every rule and reports all that fail.
// An empty password fails all four rules.
func CheckPassword(password string) PasswordCheck {
	var hasLower, hasUpper bool
	for _, r := range password {
		if unicode.IsLower(r) {
			hasLower = true
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}

	endsWithDigit := false
	if last, size := utf8.DecodeLastRuneInString(password); size > 0 {
		endsWithDigit = unicode.IsDigit(last)
	}

	var unmet []PasswordRequirement
	if utf8.RuneCountInString(password) < MinPasswordLength {
		unmet = append(unmet, RequirementLength)
	}
	if !hasLower {
		unmet = append(unmet, RequirementLowercase)
	}
	if !hasUpper {
		unmet = append(unmet, RequirementUppercase)
	}
	if !endsWithDigit {
		unmet = append(unmet, RequirementEndDigit)
	}

	return PasswordCheck{
		Valid: len(unmet) == 0,
		Unmet: unmet,
	}
}
