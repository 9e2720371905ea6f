// Package signup holds the sign-up domain: the validated inputs, the identity
// sum type, the assembled payload, and the submission error taxonomy.
package signup

import (
	"fmt"
	"strings"
)

// Field names a validated sign-up input. Closed set; the wire tags double as
// the field descriptors the remote contract uses.
type Field string

const (
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldPhoneNumber Field = "phone_number"
)

// IsValid checks if the field is one of the supported enum values.
func (f Field) IsValid() bool {
	switch f {
	case FieldName, FieldEmail, FieldPhoneNumber:
		return true
	}
	return false
}

// String returns the wire tag.
func (f Field) String() string { return string(f) }

// ParseField maps a wire tag to a Field. ok is false for tags this form does
// not collect; callers decide whether that is tolerable data (remote field
// descriptors are dropped) or a programming error.
func ParseField(s string) (Field, bool) {
	f := Field(strings.TrimSpace(strings.ToLower(s)))
	return f, f.IsValid()
}

// FieldError scopes one or more rule failures to a single field.
// Messages is never empty: a FieldError only exists once a rule failed.
type FieldError struct {
	Field    Field
	Messages []string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, "; "))
}

// IdentityKind selects which identity the form collects. A user signs up
// with exactly one of an email address or a phone number.
type IdentityKind string

const (
	KindEmail IdentityKind = "email"
	KindPhone IdentityKind = "phone"
)

// IsValid checks if the kind is one of the supported enum values.
func (k IdentityKind) IsValid() bool {
	return k == KindEmail || k == KindPhone
}

// Field returns the input field this kind is validated against.
func (k IdentityKind) Field() Field {
	if k == KindPhone {
		return FieldPhoneNumber
	}
	return FieldEmail
}

// Toggle returns the other identity kind.
func (k IdentityKind) Toggle() IdentityKind {
	if k == KindEmail {
		return KindPhone
	}
	return KindEmail
}

// Identity is the sign-up discriminant. Instances only exist after the value
// passed its kind's validator; there is no public constructor.
type Identity struct {
	kind  IdentityKind
	value string
}

func (i Identity) Kind() IdentityKind { return i.kind }
func (i Identity) Value() string      { return i.value }

// Payload is a fully validated sign-up request. Built only by the form
// assembler on full success and immutable thereafter.
type Payload struct {
	Name     string
	Identity Identity
}

// Token is the opaque credential returned by a successful sign-up. Whatever
// stores or uses it after submission is outside this core.
type Token struct {
	Value string
}
