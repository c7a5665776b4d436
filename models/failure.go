package models

import (
	"errors"
	"fmt"
)

// FailureKind classifies where in the pipeline a call went wrong.
type FailureKind string

const (
	// KindValidation means bad input shape or range, caught before any
	// network call.
	KindValidation FailureKind = "validation"
	// KindNotFound means geocoding yielded no candidates.
	KindNotFound FailureKind = "not_found"
	// KindTimeout means the upstream call exceeded the fixed timeout.
	KindTimeout FailureKind = "timeout"
	// KindNetwork means the transport failed below the HTTP layer.
	KindNetwork FailureKind = "network"
	// KindUpstream means the upstream service answered with a
	// non-success status.
	KindUpstream FailureKind = "upstream_error"
	// KindParse means the upstream body was not the expected shape.
	KindParse FailureKind = "parse_error"
)

// Failure is the typed error every component returns across its
// boundary. The tool layer is the only place a Failure becomes
// user-facing text.
type Failure struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Validationf builds a validation failure.
func Validationf(format string, args ...any) *Failure {
	return &Failure{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not_found failure.
func NotFoundf(format string, args ...any) *Failure {
	return &Failure{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Timeout wraps a deadline error from an upstream call.
func Timeout(message string, err error) *Failure {
	return &Failure{Kind: KindTimeout, Message: message, Err: err}
}

// Network wraps a transport error from an upstream call.
func Network(message string, err error) *Failure {
	return &Failure{Kind: KindNetwork, Message: message, Err: err}
}

// Upstream builds an upstream_error failure for a non-success status.
func Upstream(message string) *Failure {
	return &Failure{Kind: KindUpstream, Message: message}
}

// Parsef builds a parse_error failure for an unexpected payload shape.
func Parsef(format string, args ...any) *Failure {
	return &Failure{Kind: KindParse, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the failure kind from an error chain. Errors that
// are not a Failure classify as network, the most conservative bucket
// for an unexplained transport problem.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindNetwork
}

// FailureMessage extracts the human-readable message from an error
// chain, falling back to Error() for untyped errors.
func FailureMessage(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Message
	}
	return err.Error()
}
