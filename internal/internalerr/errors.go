// Package internalerr defines the tagged error kinds every core component
// returns on failure, so HTTP and CLI transports can map one error value to
// a status code / exit code without inspecting message strings.
package internalerr

import (
	"errors"
	"fmt"
)

// Kind tags an error with the failure category from the error handling
// design: each kind maps to one external status for the HTTP transport and
// one exit code for the CLI.
type Kind int

const (
	// Unknown is the zero value; Of returns it for errors with no Kind attached.
	Unknown Kind = iota
	// MalformedInput covers bad JSON, missing text, wrong field types.
	MalformedInput
	// LimitExceeded covers oversize body/page count/text beyond a profile's limits.
	LimitExceeded
	// StopwordsUnavailable covers a failed stopword resource load.
	StopwordsUnavailable
	// AllocationFailure covers an out-of-memory condition in any component.
	AllocationFailure
	// PipelineFailure covers a counter returning failure.
	PipelineFailure
	// Timeout covers a deadline exceeded during analysis.
	Timeout
)

func (k Kind) String() string {
	switch k {
	case MalformedInput:
		return "malformed_input"
	case LimitExceeded:
		return "limit_exceeded"
	case StopwordsUnavailable:
		return "stopwords_unavailable"
	case AllocationFailure:
		return "allocation_failure"
	case PipelineFailure:
		return "pipeline_failure"
	case Timeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Error pairs a Kind with the underlying cause, supporting errors.Is/As via
// Unwrap.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap tags err with kind. Wrap(kind, nil) returns nil, matching the
// standard library's fmt.Errorf nil-safety expectations.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// New builds a bare Kind-tagged error from a message, for call sites with no
// underlying error to wrap.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

// Of extracts the Kind attached to err, walking the Unwrap chain. Returns
// Unknown if no *Error is found.
func Of(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Sentinel errors for cases that don't need a dynamic message.
var (
	ErrDeadlineExceeded = New(Timeout, "analysis deadline exceeded")
)
