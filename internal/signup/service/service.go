package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Gateway

import (
	"context"
	"errors"
	"log/slog"

	"enroll/internal/signup"
	"enroll/internal/signup/metrics"
	"enroll/internal/signup/state"
	"enroll/pkg/platform/sentinel"
	"enroll/pkg/result"
	"enroll/pkg/validated"
)

// RemoteFieldError is one field descriptor inside a structured remote
// rejection. Field carries the wire tag; the server may name fields this
// form does not collect.
type RemoteFieldError struct {
	Field    string
	Messages []string
}

// RemoteError is a structured rejection from the sign-up endpoint, as
// opposed to a transport fault.
type RemoteError struct {
	Message string
	Fields  []RemoteFieldError
}

func (e *RemoteError) Error() string { return e.Message }

// Gateway performs the remote sign-up call. A *RemoteError return means the
// server answered and rejected the payload; any other error is a
// connectivity fault. Retries and timeouts are the gateway's own concern.
type Gateway interface {
	SignUp(ctx context.Context, payload signup.Payload) (signup.Token, error)
}

// Service orchestrates one sign-up submission: assemble the form with
// accumulating validation, then run the remote call as a fail-fast pipeline,
// publishing presentation-state transitions along the way.
type Service struct {
	gateway Gateway
	state   *state.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs the submission orchestrator. metrics may be nil when the
// caller does not record them.
func New(gateway Gateway, store *state.Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		gateway: gateway,
		state:   store,
		logger:  logger,
		metrics: m,
	}
}

// State exposes the presentation-state store for the UI collaborator.
func (s *Service) State() *state.Store { return s.state }

// Submit runs one submission for the active identity kind. A submit while a
// prior one is still in flight is rejected with sentinel.ErrInFlight and
// publishes no state. Submission outcomes, including failures, arrive as the
// Result value with a nil error.
func (s *Service) Submit(ctx context.Context, name, rawID string, kind signup.IdentityKind) (result.Result[signup.Token, signup.SubmitError], error) {
	if !s.state.BeginSubmission(name, rawID, kind) {
		s.observe(metrics.OutcomeInFlight)
		s.logger.WarnContext(ctx, "submission rejected, one already in flight")
		return result.Result[signup.Token, signup.SubmitError]{}, sentinel.ErrInFlight
	}

	res := s.run(ctx, name, rawID, kind)

	if submitErr, failed := res.Error(); failed {
		s.state.Update(func(f state.Form) state.Form { return state.Reduce(f, submitErr) })
		s.observe(outcomeFor(submitErr))
		s.logger.WarnContext(ctx, "sign-up failed",
			"identity_kind", string(kind),
			"error", submitErr,
		)
		return res, nil
	}

	s.state.Update(state.Settle)
	s.observe(metrics.OutcomeAccepted)
	s.logger.InfoContext(ctx, "sign-up accepted", "identity_kind", string(kind))
	return res, nil
}

// run is the pure pipeline: accumulate field validation, collapse to the
// fail-fast type, then call the gateway. The gateway is never invoked when
// local validation fails.
func (s *Service) run(ctx context.Context, name, rawID string, kind signup.IdentityKind) result.Result[signup.Token, signup.SubmitError] {
	assembled := validated.ToResult(signup.NewForm(name, rawID, kind))

	checked := result.MapErr(assembled, func(errs []signup.FieldError) signup.SubmitError {
		return &signup.ValidationError{Fields: errs}
	})

	return result.AndThen(checked, func(p signup.Payload) result.Result[signup.Token, signup.SubmitError] {
		token, err := s.gateway.SignUp(ctx, p)
		if err != nil {
			return result.Err[signup.Token](mapRemoteError(err))
		}
		return result.Ok[signup.Token, signup.SubmitError](token)
	})
}

// mapRemoteError translates a gateway failure into the submission taxonomy.
// Field descriptors naming fields this form does not collect are dropped; a
// rejection left with no usable descriptors degrades to a plain HTTP error.
func mapRemoteError(err error) signup.SubmitError {
	var remote *RemoteError
	if !errors.As(err, &remote) {
		return &signup.ConnectivityError{Cause: err}
	}

	fields := make([]signup.FieldError, 0, len(remote.Fields))
	for _, rf := range remote.Fields {
		field, ok := signup.ParseField(rf.Field)
		if !ok || len(rf.Messages) == 0 {
			continue
		}
		fields = append(fields, signup.FieldError{Field: field, Messages: rf.Messages})
	}

	if len(fields) == 0 {
		return &signup.HTTPError{Message: remote.Message}
	}
	return &signup.ValidationError{Fields: fields}
}

func outcomeFor(err signup.SubmitError) string {
	switch err.(type) {
	case *signup.ValidationError:
		return metrics.OutcomeInvalid
	case *signup.HTTPError:
		return metrics.OutcomeRemoteReject
	default:
		return metrics.OutcomeConnectivity
	}
}

func (s *Service) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveSubmission(outcome)
	}
}
