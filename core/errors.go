package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrRemoteUnavailable is returned by RemoteRepository implementations when
// the hosted backend cannot be reached. It is never fatal: local writes
// proceed and the mirror is retried out-of-band.
var ErrRemoteUnavailable = errors.New("remote repository unavailable")

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// NotFoundError signals that an update/delete referenced an id absent from
// its collection. The reducer itself stays a silent no-op; services raise
// this so callers can tell "nothing happened" from "succeeded".
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", err.Entity, err.ID)
}

func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*NotFoundError)
	return ok
}

// InvalidTransitionError signals a status advance that skips a required
// intermediate state. It is rejected before any dispatch occurs.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (err InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s cannot move from %q to %q", err.Entity, err.From, err.To)
}

func IsInvalidTransition(err error) bool {
	_, ok := errors.Cause(err).(*InvalidTransitionError)
	return ok
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
