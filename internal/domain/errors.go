package domain

import "errors"

// Shared error taxonomy. Services wrap these with context via %w and handlers
// map them to HTTP statuses with errors.Is.
var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrConflict            = errors.New("conflict")
	ErrUnauthorized        = errors.New("unauthorized")
	// ErrUserNotFound from a ledger operation signals a data-integrity fault:
	// a financial transition referenced an account that does not exist.
	ErrUserNotFound = errors.New("user not found")
)
