package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates a duplicate identifier or an operation that would
// violate referential rules (e.g. deleting a referenced account).
var ErrConflict = errors.New("resource conflict")

// ErrInvalidState indicates an illegal lifecycle transition, such as posting
// a transaction that is not approved.
var ErrInvalidState = errors.New("invalid state transition")

// ErrUnbalanced indicates that a transaction's entries do not balance.
// Use UnbalancedError to carry the actual totals back to the caller.
var ErrUnbalanced = errors.New("transaction entries are not balanced")

// ErrForbidden indicates the actor is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// UnbalancedError reports the debit/credit totals of an unbalanced entry set
// so callers can display the discrepancy.
type UnbalancedError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("transaction entries are not balanced: total debit %s, total credit %s, delta %s",
		e.TotalDebit.String(), e.TotalCredit.String(), e.Delta().String())
}

// Delta returns totalDebit - totalCredit.
func (e *UnbalancedError) Delta() decimal.Decimal {
	return e.TotalDebit.Sub(e.TotalCredit)
}

// Unwrap makes errors.Is(err, ErrUnbalanced) work on wrapped instances.
func (e *UnbalancedError) Unwrap() error {
	return ErrUnbalanced
}

// AppError wraps a lower-level error with an HTTP-ish status code and a
// message. Repositories use it for infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
