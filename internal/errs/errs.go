// Package errs defines the error kinds shared by the discovery pipeline, the
// stores and the HTTP layer.
package errs

import (
	"errors"
	"time"
)

// Kind classifies an error by how the caller is expected to react to it.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindTimeout
	KindNotAuthenticated
	KindAlreadyExists
	KindNotFound
	KindTransientStore
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTimeout:
		return "timeout"
	case KindNotAuthenticated:
		return "not_authenticated"
	case KindAlreadyExists:
		return "already_exists"
	case KindNotFound:
		return "not_found"
	case KindTransientStore:
		return "transient_store"
	case KindUnavailable:
		return "unavailable"
	}
	return "unknown"
}

// Error is a classified error. Two Errors match under errors.Is when their
// kinds are equal, so the sentinels below can be used as targets.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrValidation       = &Error{Kind: KindValidation}
	ErrTimeout          = &Error{Kind: KindTimeout}
	ErrNotAuthenticated = &Error{Kind: KindNotAuthenticated, Message: "user not authenticated"}
	ErrAlreadyExists    = &Error{Kind: KindAlreadyExists, Message: "this place is already saved"}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrTransientStore   = &Error{Kind: KindTransientStore}
	ErrUnavailable      = &Error{Kind: KindUnavailable}
)

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Timeout(msg string) error {
	return &Error{Kind: KindTimeout, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// TransientStore wraps a failed persistence call.
func TransientStore(op string, err error) error {
	return &Error{Kind: KindTransientStore, Message: op, Err: err}
}

func Unavailable(msg string, err error) error {
	return &Error{Kind: KindUnavailable, Message: msg, Err: err}
}

// KindOf reports the kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message returns the user-facing text of err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// DismissAfter is how long a user-visible message for err stays on screen.
// Search failures linger longer than save and store failures.
func DismissAfter(err error) time.Duration {
	switch KindOf(err) {
	case KindValidation, KindTimeout, KindUnavailable, KindUnknown:
		return 5 * time.Second
	}
	return 3 * time.Second
}
