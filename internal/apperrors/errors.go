package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the resource exists but belongs to another organization.
// Messages wrapping it must not describe the other organization's data.
var ErrForbidden = errors.New("access denied")

// ErrUnauthorized indicates that the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNoTenantSelected indicates that no organization could be resolved for the caller.
var ErrNoTenantSelected = errors.New("no organization selected")

// AppError carries an HTTP-ish code for infrastructure failures (transactions, pools).
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Blocked builds the validation error returned when a delete is refused
// because other records still reference the target.
func Blocked(entity string, count int, referencedBy string) error {
	return fmt.Errorf("%w: cannot delete %s: still referenced by %d %s", ErrValidation, entity, count, referencedBy)
}
