package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every *InvalidInputError via errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProfileNotFound indicates the requester has no known spend profile.
	ErrProfileNotFound = errors.New("requester profile not found")

	// ErrQuoteNotFound indicates the fee estimate is unknown, expired from storage or already redeemed.
	ErrQuoteNotFound = errors.New("fee estimate not found")

	// ErrQuoteExpired indicates the fee estimate is past its validUntil deadline.
	ErrQuoteExpired = errors.New("fee estimate expired")

	// ErrQuoteTampered indicates the fee estimate signature does not match its contents.
	ErrQuoteTampered = errors.New("fee estimate signature mismatch")

	// ErrQuoteRequesterMismatch indicates a requester tried to redeem another requester's estimate.
	ErrQuoteRequesterMismatch = errors.New("fee estimate belongs to another requester")
)

// InvalidInputError names the request field that failed validation.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is lets callers match with errors.Is(err, ErrInvalidInput).
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}
