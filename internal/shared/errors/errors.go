package errors

import (
	"errors"
	"fmt"
)

// ErrorType is the category of an AppError. It decides the HTTP status a
// request error is answered with.
type ErrorType string

const (
	ErrorTypeNotFound         ErrorType = "not_found"
	ErrorTypeValidation       ErrorType = "validation"
	ErrorTypeInternal         ErrorType = "internal"
	ErrorTypeMethodNotAllowed ErrorType = "method_not_allowed"
	ErrorTypeExternal         ErrorType = "external"
	ErrorTypeRateLimited      ErrorType = "rate_limited"
	// ErrorTypeCanceled means the caller gave up before the work finished.
	ErrorTypeCanceled ErrorType = "canceled"
)

type AppError struct {
	Type    ErrorType
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

func newError(t ErrorType, message string, err error) error {
	return &AppError{Type: t, Message: message, Err: err}
}

func NotFoundf(format string, args ...any) error {
	return newError(ErrorTypeNotFound, fmt.Sprintf(format, args...), nil)
}

func Validation(message string) error {
	return newError(ErrorTypeValidation, message, nil)
}

func Validationf(format string, args ...any) error {
	return newError(ErrorTypeValidation, fmt.Sprintf(format, args...), nil)
}

func WrapValidation(message string, err error) error {
	return newError(ErrorTypeValidation, message, err)
}

func WrapInternal(message string, err error) error {
	return newError(ErrorTypeInternal, message, err)
}

func MethodNotAllowed(method string) error {
	return newError(ErrorTypeMethodNotAllowed, fmt.Sprintf("method %s not allowed", method), nil)
}

func RateLimited(client string) error {
	return newError(ErrorTypeRateLimited, fmt.Sprintf("rate limit exceeded for %s", client), nil)
}

// WrapExternal marks a failure of a backing service such as Redis.
func WrapExternal(message string, err error) error {
	return newError(ErrorTypeExternal, message, err)
}

// WrapCanceled wraps a context error.
func WrapCanceled(message string, err error) error {
	return newError(ErrorTypeCanceled, message, err)
}

// GetType returns the type of the first AppError in err's chain, or
// ErrorTypeInternal when there is none.
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// Is reports whether err carries an AppError of type t.
func Is(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}
