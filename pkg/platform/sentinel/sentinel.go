package sentinel

import "errors"

// Sentinel errors for infrastructure facts. These describe factual states of
// the submission machinery, not validation failures. Field and remote failures
// travel as signup.SubmitError values instead.
var (
	// ErrInFlight: a submission is already running; the new one was rejected
	// without touching presentation state.
	ErrInFlight = errors.New("submission already in flight")
	// ErrConflict: the identity is already registered on the server side.
	ErrConflict = errors.New("conflict")
)
