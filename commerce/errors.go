package commerce

import (
	"errors"
	"fmt"
)

// Kind classifies an expected request failure so the transport layer
// can pick a status code without inspecting messages.
type Kind int

const (
	// KindInvalidInput is a missing or malformed field, or a
	// business-rule violation such as insufficient stock.
	KindInvalidInput Kind = iota + 1
	// KindNotFound is a lookup of a record that does not exist.
	KindNotFound
	// KindStoreFailure is a backing-store call that failed. The
	// message shown to callers stays generic.
	KindStoreFailure
)

// Error is the result of a failed operation. Expected failures are
// returned as values and propagated by early return; only genuinely
// unexpected faults are left to the handler boundary.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidInputf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func storeFailure(message string, err error) *Error {
	return &Error{Kind: KindStoreFailure, Message: message, Err: err}
}

// KindOf extracts the Kind of err, or zero when err is not an Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// MessageOf returns the caller-facing message of err. The message on a
// store failure is generic by construction; unclassified errors report
// nothing about their cause.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
