package errdefs

import (
	"errors"
	"fmt"
)

type ErrorType int

const (
	ErrTypeNoDisplayManagers ErrorType = iota
	ErrTypeNotInstalled
	ErrTypeMissingConfig
	ErrTypeConfigIO
	ErrTypeCommand
	ErrTypeGeneric
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeNoDisplayManagers:
		return "no-display-managers"
	case ErrTypeNotInstalled:
		return "not-installed"
	case ErrTypeMissingConfig:
		return "missing-config"
	case ErrTypeConfigIO:
		return "config-io"
	case ErrTypeCommand:
		return "command"
	default:
		return "generic"
	}
}

// JobError is the failure handed back to the installer: a short summary for
// the UI headline and a longer detail line. Err carries the underlying cause
// when there is one.
type JobError struct {
	Type    ErrorType
	Summary string
	Detail  string
	Err     error
}

func (e *JobError) Error() string {
	if e.Detail == "" {
		return e.Summary
	}
	return fmt.Sprintf("%s: %s", e.Summary, e.Detail)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// Is matches any JobError of the same type, so callers can test for a kind
// with errors.Is(err, &JobError{Type: ErrTypeNotInstalled}).
func (e *JobError) Is(target error) bool {
	t, ok := target.(*JobError)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

func NewJobError(errType ErrorType, summary, detail string) error {
	return &JobError{
		Type:    errType,
		Summary: summary,
		Detail:  detail,
	}
}

// WrapJobError is NewJobError with an underlying cause attached.
func WrapJobError(errType ErrorType, summary, detail string, err error) error {
	return &JobError{
		Type:    errType,
		Summary: summary,
		Detail:  detail,
		Err:     err,
	}
}

var ErrNoDisplayManagers = NewJobError(
	ErrTypeNoDisplayManagers,
	"No display managers selected for the displaymanager module.",
	"The displaymanagers list is empty or undefined in both globalstorage and displaymanager.conf.",
)

// Pair flattens err into the (summary, detail) form the installer shows.
// A nil error yields two empty strings.
func Pair(err error) (string, string) {
	if err == nil {
		return "", ""
	}
	var jobErr *JobError
	if errors.As(err, &jobErr) {
		return jobErr.Summary, jobErr.Detail
	}
	return "Display manager configuration failed", err.Error()
}

// TypeOf reports the kind of err, or ErrTypeGeneric for foreign errors.
func TypeOf(err error) ErrorType {
	var jobErr *JobError
	if errors.As(err, &jobErr) {
		return jobErr.Type
	}
	return ErrTypeGeneric
}
