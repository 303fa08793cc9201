package pkg

// Sentinel errors for the dlog module and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrAlreadyInitialized is returned by log.Init when a process-wide logger
// is already live.
//
// Call log.Destroy before initializing a new one.
var ErrAlreadyInitialized = MakeErrorf("logger already initialized")

// ErrNotInitialized is returned by log.Destroy when no process-wide logger
// is live.
var ErrNotInitialized = MakeErrorf("logger not initialized")

// ErrOpenLogFile is recorded when the filesystem sink cannot open its file.
//
// The logger never returns this error from construction; it is wrapped with
// the underlying I/O error and exposed through Logger.FileErr.
var ErrOpenLogFile = MakeErrorf("failed to open log file")

// ErrInvalidLevel is returned when a log level name is not recognized.
//
// This error should be wrapped with the offending name.
var ErrInvalidLevel = MakeErrorf("invalid log level")

// ErrInvalidSink is returned when a sink name is not recognized.
//
// This error should be wrapped with the offending name.
var ErrInvalidSink = MakeErrorf("invalid log sink")

// ErrReadConfig is returned when the configuration file cannot be decoded.
//
// This error should be wrapped with the underlying decode error
// to preserve the error chain.
var ErrReadConfig = MakeErrorf("failed to read configuration")

// ErrYAMLMarshal is returned when YAML marshaling fails.
//
// This error should be wrapped with the underlying marshaling error
// to preserve the error chain.
var ErrYAMLMarshal = MakeErrorf("YAML marshal error")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", in the order they were added.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to a copy of the receiver and returns the
// result. The receiver is never modified, so sentinels stay reusable.
func (e Error) Wrap(err ...error) Error {
	return append(slices.Clip(e), err...)
}

// Wrapf appends a formatted error to a copy of the receiver and returns the
// result.
func (e Error) Wrapf(format string, args ...any) Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// Is reports whether target is an Error whose chain is a prefix of the
// receiver's chain. This lets a wrapped sentinel match errors.Is against the
// bare sentinel.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 || len(t) > len(e) {
		return false
	}

	for i := range t {
		if e[i] != t[i] {
			return false
		}
	}

	return true
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(Error); ok {
		return slices.Clone(e)
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
