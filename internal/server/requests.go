package server

import (
	"errors"
	"strings"
)

// Request body size caps. Structural checks run before field validation.
const (
	maxNameLen     = 100
	maxIdentityLen = 255
)

// SignUpRequest is the HTTP request body for POST /signup. Exactly one of
// Email and PhoneNumber must be present.
type SignUpRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

func (r *SignUpRequest) Normalize() {
	if r == nil {
		return
	}
	r.Email = strings.TrimSpace(r.Email)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
}

// Validate checks structure only: sizes and the one-identity invariant.
// Field-level rules run afterwards through the shared validators so the
// server rejects exactly what the client would.
func (r *SignUpRequest) Validate() error {
	if r == nil {
		return errors.New("request body is required")
	}

	if len(r.Name) > maxNameLen {
		return errors.New("name is too long")
	}
	if len(r.Email) > maxIdentityLen || len(r.PhoneNumber) > maxIdentityLen {
		return errors.New("identity is too long")
	}

	if r.Email == "" && r.PhoneNumber == "" {
		return errors.New("one of email or phone_number is required")
	}
	if r.Email != "" && r.PhoneNumber != "" {
		return errors.New("only one of email or phone_number may be set")
	}

	return nil
}
