package core

import (
	"context"
	"errors"
	"strings"
)

// Error kinds. Business failures join one of them with a reason:
//
//	errors.Join(core.ErrConflict, errors.New("book already checked out"))
//
// Storage failures are joined with ErrStorage by the command and query handlers.
var (
	ErrNotFound    = errors.New("not found")
	ErrForbidden   = errors.New("forbidden")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
	ErrInvalid     = errors.New("invalid")
	ErrStorage     = errors.New("storage error")
)

// Kind names an error kind at the service boundary.
type Kind string

const (
	KindNotFound    Kind = "NotFound"
	KindForbidden   Kind = "Forbidden"
	KindConflict    Kind = "Conflict"
	KindUnavailable Kind = "Unavailable"
	KindInvalid     Kind = "Invalid"
	KindStorage     Kind = "StorageError"
)

var businessKinds = []struct {
	sentinel error
	kind     Kind
}{
	{ErrNotFound, KindNotFound},
	{ErrForbidden, KindForbidden},
	{ErrConflict, KindConflict},
	{ErrUnavailable, KindUnavailable},
	{ErrInvalid, KindInvalid},
}

// Reject builds a business failure of the given kind.
func Reject(kind error, reason string) error {
	return errors.Join(kind, errors.New(reason))
}

// StorageFailure wraps a store error, keeping the store sentinels reachable with errors.Is.
func StorageFailure(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrStorage) {
		return err
	}

	return errors.Join(ErrStorage, err)
}

// KindOf classifies err. Errors without a business kind, including context cancellation
// and deadline errors, classify as KindStorage. A nil error has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrStorage) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindStorage
	}

	for _, bk := range businessKinds {
		if errors.Is(err, bk.sentinel) {
			return bk.kind
		}
	}

	return KindStorage
}

// IsBusinessFailure reports whether err is a rejection by the business rules rather than a technical failure.
func IsBusinessFailure(err error) bool {
	kind := KindOf(err)

	return kind != "" && kind != KindStorage
}

// Reason returns the human part of err: the messages joined to the kind sentinel, without the sentinel itself.
func Reason(err error) string {
	if err == nil {
		return ""
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, 2)
	for _, e := range joined.Unwrap() {
		if isKindSentinel(e) {
			continue
		}

		parts = append(parts, Reason(e))
	}

	if len(parts) == 0 {
		return err.Error()
	}

	return strings.Join(parts, ": ")
}

func isKindSentinel(err error) bool {
	if err == ErrStorage { //nolint:errorlint
		return true
	}

	for _, bk := range businessKinds {
		if err == bk.sentinel { //nolint:errorlint
			return true
		}
	}

	return false
}
