package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidScore   = errors.New("must be between 24 and 45")
	ErrInvalidGrade   = errors.New("must be between 1.0 and 4.0")
	ErrMalformedInput = errors.New("not a number")
	ErrInvalidConfig  = errors.New("invalid config")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidScore   ErrorKind = "invalid_score"
	KindInvalidGrade   ErrorKind = "invalid_grade"
	KindMalformedInput ErrorKind = "malformed_input"
	KindInvalidConfig  ErrorKind = "invalid_config"
	KindIO             ErrorKind = "io"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op    string
	Kind  ErrorKind
	Input string // Optional: the offending user input
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Input != "" {
		base += fmt.Sprintf(" (input=%q)", e.Input)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}
