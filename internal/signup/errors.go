package signup

import "strings"

// SubmitError is the closed set of ways a submission can fail: local or
// remote field validation, a structured remote rejection without usable field
// scoping, or a connectivity fault. Every core function returns these as
// values; nothing in this package panics on a submission outcome.
type SubmitError interface {
	error
	submitError()
}

// ValidationError carries field-scoped failures. Fields is never empty and
// preserves the order failures were accumulated in.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) submitError() {}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		parts[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FirstMessage returns the first message recorded for field, or "" when the
// field has no failures.
func (e *ValidationError) FirstMessage(f Field) string {
	for _, fe := range e.Fields {
		if fe.Field == f && len(fe.Messages) > 0 {
			return fe.Messages[0]
		}
	}
	return ""
}

// HTTPError is a structured remote rejection that names no field this form
// collects. Message is server-provided, user-facing copy.
type HTTPError struct {
	Message string
}

func (e *HTTPError) submitError() {}

func (e *HTTPError) Error() string { return "remote rejected sign-up: " + e.Message }

// ConnectivityError is a transport-level fault. Cause is kept for diagnostics
// only and is never shown raw to the user.
type ConnectivityError struct {
	Cause error
}

func (e *ConnectivityError) submitError() {}

func (e *ConnectivityError) Error() string { return "sign-up request failed: " + e.Cause.Error() }

func (e *ConnectivityError) Unwrap() error { return e.Cause }
