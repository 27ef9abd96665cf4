package engine

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeUnknown           Code = "UNKNOWN"
	CodeValidation        Code = "VALIDATION"
	CodeNotFound          Code = "NOT_FOUND"
	CodeInsufficientFunds Code = "INSUFFICIENT_FUNDS"
	CodeAlreadyOwned      Code = "ALREADY_OWNED"
	CodePersistence       Code = "PERSISTENCE"
)

// ValidationError indicates bad user input (e.g. an empty task title).
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e ValidationError) Code() Code { return CodeValidation }

// NotFoundError is returned for lookups of unknown tasks or shop items.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e NotFoundError) Code() Code { return CodeNotFound }

// InsufficientFundsError is returned when the balance cannot cover a purchase.
type InsufficientFundsError struct {
	ItemID  string
	Price   int
	Balance int
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("you need %d coins to buy %s (you have %d)", e.Price, e.ItemID, e.Balance)
}

func (e InsufficientFundsError) Code() Code { return CodeInsufficientFunds }

type AlreadyOwnedError struct {
	ItemID string
}

func (e AlreadyOwnedError) Error() string {
	return fmt.Sprintf("you already own %s", e.ItemID)
}

func (e AlreadyOwnedError) Code() Code { return CodeAlreadyOwned }

// ErrUnreadable is wrapped by a PersistenceError when a write would overwrite a
// key that failed to load when the session was opened.
var ErrUnreadable = errors.New("key was unreadable at open")

// PersistenceError wraps a store failure. The in-memory state of the Service is
// kept even when the write behind it failed.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Op, e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

func (e PersistenceError) Code() Code { return CodePersistence }

// ErrorCode returns the Code carried by err, or CodeUnknown.
func ErrorCode(err error) Code {
	var coded interface{ Code() Code }
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return CodeUnknown
}
