package target

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("malformed target descriptor")

	ErrDuplicateName      = errors.New("duplicate target name")
	ErrUnknownTargetType  = errors.New("unknown target type")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrDuplicateModule    = errors.New("duplicate module")
)

// ParseError reports a record that could not be turned into a Descriptor.
type ParseError struct {
	Target string // may be empty when the name itself is missing
	Source string
	Field  string
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	subject := "target"
	if e.Target != "" {
		subject = fmt.Sprintf("target %q", e.Target)
	}
	if e.Source != "" {
		subject += " (" + e.Source + ")"
	}
	msg := e.Msg
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	return fmt.Sprintf("%s: %s: %s", ErrParse.Error(), subject, msg)
}

// Unwrap exposes both ErrParse and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// ValidationError reports a loaded descriptor the validator rejected.
// Reason is one of ErrDuplicateName, ErrUnknownTargetType,
// ErrUnsupportedVersion or ErrDuplicateModule.
type ValidationError struct {
	Target string
	Reason error
	Detail string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Detail == "" {
		return fmt.Sprintf("target %q: %s", e.Target, e.Reason)
	}
	return fmt.Sprintf("target %q: %s: %s", e.Target, e.Reason, e.Detail)
}

func (e *ValidationError) Unwrap() error { return e.Reason }

func invalid(d *Descriptor, reason error, format string, args ...any) error {
	return &ValidationError{Target: d.name, Reason: reason, Detail: fmt.Sprintf(format, args...)}
}
