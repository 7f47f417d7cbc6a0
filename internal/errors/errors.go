// Package errors unifies stdlib error inspection with pkg/errors stack
// annotation behind one import, so call sites never mix the two directly.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain error with the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree matching target's type.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns err's wrapped error, if any.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join combines multiple errors into one.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with a message and a stack trace.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message and a stack trace.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace at the call site.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// WithMessage annotates err with a message, without a new stack trace.
func WithMessage(err error, message string) error {
	return pkgerrors.WithMessage(err, message)
}

// Errorf formats a new error carrying a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Cause returns the root cause of err, per pkg/errors semantics.
//
//nolint:wrapcheck // Compatibility passthrough to preserve pkg/errors semantics.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
