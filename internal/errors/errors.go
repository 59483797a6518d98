// Package errors is the error toolkit shared by the infrastructure packages.
// Constructors record a stack trace through pkg/errors; matching goes through the stdlib.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with the given text and a stack trace.
func New(text string) error {
	return pkgerrors.New(text)
}

// Errorf formats an error message and records a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Wrap annotates err with message and a stack trace. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records a stack trace on err. A nil err stays nil.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType returns the first error in err's tree of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Join returns an error wrapping every non-nil error in errs.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// WithRollback keeps cause as the primary error and attaches a failed rollback to it.
// Both stay reachable through Is and As.
func WithRollback(cause, rollbackErr error) error {
	if rollbackErr == nil {
		return cause
	}

	return stderrors.Join(cause, pkgerrors.Wrap(rollbackErr, "transaction rollback failed"))
}
