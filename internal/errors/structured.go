package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
)

// Error is the normalized error shape all failures are converted into
// before handling. Details is an arbitrary structured payload; keys are
// stable identifiers (frame_id, api_type, component_type, factory_id).
type Error struct {
	Category Category
	Message  string
	Details  map[string]any
	cause    error
}

// New creates a structured error.
func New(category Category, message string) *Error {
	return &Error{Category: category, Message: message}
}

// Newf creates a structured error with a formatted message.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{Category: category, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates an existing error with a category and message,
// preserving the cause for errors.Is/As chains.
func Wrap(category Category, err error, message string) *Error {
	return &Error{Category: category, Message: message, cause: err}
}

// WithDetails replaces the details payload. The map is copied so callers
// cannot mutate handler-visible state afterwards.
func (e *Error) WithDetails(details map[string]any) *Error {
	if details == nil {
		e.Details = nil
		return e
	}
	e.Details = maps.Clone(details)
	return e
}

// WithDetail sets a single detail entry.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any, 1)
	}
	e.Details[key] = value
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Category, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Category, e.Message)
}

// Unwrap exposes the wrapped cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches structured errors by category so callers can branch with
// stderrors.Is(err, errors.New(errors.CategoryFactory, "")).
func (e *Error) Is(target error) bool {
	var t *Error
	if !stderrors.As(target, &t) {
		return false
	}
	if t.Message != "" && t.Message != e.Message {
		return false
	}
	return t.Category == e.Category
}

// AsStructured extracts a structured error from err, or nil when err is
// a plain failure.
func AsStructured(err error) *Error {
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return nil
}

// CategoryOf returns the category carried by err. Plain failures are
// uncategorized and coerce to runtime.
func CategoryOf(err error) Category {
	if e := AsStructured(err); e != nil {
		return e.Category
	}
	return CategoryRuntime
}
