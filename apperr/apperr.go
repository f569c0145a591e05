package apperr

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Kind classifies an error so callers know whether the client caused it
// and whether retrying could succeed.
type Kind int

const (
	Validation Kind = iota // bad field value, 400
	Conflict               // uniqueness violation, 409
	Reference              // foreign key points at a missing parent, 400
	NotFound               // no row for the given id, 404
	Transient              // engine busy or locked, 500, retryable
	Fatal                  // unexpected store failure, 500
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Status maps the kind to the HTTP status the boundary should answer with.
func (e *AppError) Status() int {
	switch e.Kind {
	case Validation, Reference:
		return 400
	case Conflict:
		return 409
	case NotFound:
		return 404
	default:
		return 500
	}
}

// Retryable reports whether the same call could succeed if repeated.
func (e *AppError) Retryable() bool { return e.Kind == Transient }

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Validationf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

// As extracts an *AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// FromDB turns a store error into an AppError with a client-safe message.
// The raw driver text never reaches the client; the context string tells
// the user which operation failed.
func FromDB(err error, context string) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := As(err); ok {
		return appErr
	}

	msg := err.Error()
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(msg, "UNIQUE constraint failed"):
		return &AppError{Kind: Conflict, Message: "That record already exists. Please use a different value.", Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated) || strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &AppError{Kind: Reference, Message: "Cannot save this record because it references a non-existent record.", Err: err}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &AppError{Kind: NotFound, Message: fmt.Sprintf("No record found while %s.", context), Err: err}
	case strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY"):
		return &AppError{Kind: Transient, Message: "Database is busy. Please try again in a moment.", Err: err}
	}
	return &AppError{Kind: Fatal, Message: fmt.Sprintf("Unable to complete %s. Please try again.", context), Err: err}
}
