package server

import "enroll/internal/signup"

// TokenResponse is the 201 body: the opaque credential for the new account.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorEnvelope is the structured rejection body. Errors is present only when
// the server can scope the failure to fields the form collects.
type ErrorEnvelope struct {
	Message string            `json:"message"`
	Errors  []FieldDescriptor `json:"errors,omitempty"`
}

// FieldDescriptor scopes one or more messages to a named field, using the
// same wire tags the client validators use.
type FieldDescriptor struct {
	Field  string   `json:"field"`
	Errors []string `json:"errors"`
}

// NewValidationEnvelope builds the rejection envelope from accumulated field
// errors, preserving their order.
func NewValidationEnvelope(message string, fields []signup.FieldError) ErrorEnvelope {
	env := ErrorEnvelope{Message: message}
	for _, fe := range fields {
		env.Errors = append(env.Errors, FieldDescriptor{
			Field:  fe.Field.String(),
			Errors: fe.Messages,
		})
	}
	return env
}
