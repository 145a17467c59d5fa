package model

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound = errors.New("order not found")

	// ErrGatewayNotConfigured means the Square credentials or location id
	// are missing. Reported before any network attempt so the caller can
	// show an administrator-facing message instead of a card decline.
	ErrGatewayNotConfigured = errors.New("square payment gateway is not configured")
)

// ValidationError is a caller-correctable input problem. Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PaymentError covers gateway declines, network failures and timeouts
// during a charge. Charged=true marks the one genuinely inconsistent case:
// the gateway captured funds but the order insert failed afterwards. That
// variant must never trigger a charge retry (double-charge) or an insert
// retry under a new id (orphaned charge reference); it is surfaced for
// manual reconciliation, carrying the gateway payment id.
type PaymentError struct {
	Detail    string
	Charged   bool
	PaymentID string
	Err       error
}

func (e *PaymentError) Error() string {
	if e.Charged {
		return fmt.Sprintf("payment %s captured but order not recorded: %v", e.PaymentID, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("payment failed: %v", e.Err)
	}
	return fmt.Sprintf("payment failed: %s", e.Detail)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// StorageError wraps a failed order insert on the deferred path, where no
// money has moved and the caller may simply try again.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store order: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
