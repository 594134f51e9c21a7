package errors

import (
	"errors"
	"fmt"
)

// ErrorWrapper attaches a fixed module/operation pair to errors raised
// on one code path, separating the internal cause from the message the
// HTTP layer may show a student.
type ErrorWrapper struct {
	operation string
	module    string
}

// NewWrapper creates an error wrapper for one module operation.
func NewWrapper(module, operation string) *ErrorWrapper {
	return &ErrorWrapper{
		module:    module,
		operation: operation,
	}
}

// Wrap pairs err with a user-facing message. Returns nil if err is nil.
func (w *ErrorWrapper) Wrap(err error, userMessage string) error {
	if err == nil {
		return nil
	}
	return &WrappedError{
		Operation:   w.operation,
		Module:      w.module,
		Cause:       err,
		UserMessage: userMessage,
	}
}

// Wrapf is Wrap with a formatted user-facing message.
func (w *ErrorWrapper) Wrapf(err error, userMessageFormat string, args ...any) error {
	if err == nil {
		return nil
	}
	return w.Wrap(err, fmt.Sprintf(userMessageFormat, args...))
}

// WrappedError carries the internal cause alongside the message safe to
// return in an API response body.
type WrappedError struct {
	Operation   string
	Module      string
	Cause       error
	UserMessage string
}

func (e *WrappedError) Error() string {
	return fmt.Sprintf("[%s:%s] %s: %v", e.Module, e.Operation, e.UserMessage, e.Cause)
}

func (e *WrappedError) Unwrap() error {
	return e.Cause
}

// GetUserMessage extracts the user-facing message from anywhere in the
// error chain. Unwrapped errors return their plain Error() text.
func GetUserMessage(err error) string {
	if err == nil {
		return ""
	}
	var wrapped *WrappedError
	if errors.As(err, &wrapped) {
		return wrapped.UserMessage
	}
	return err.Error()
}
