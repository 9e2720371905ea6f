package signup

import (
	"fmt"

	"enroll/pkg/validated"
)

// NewEmailForm assembles a payload from a name and an email address,
// accumulating failures from both validators. An invalid form carries at most
// two FieldErrors, name before email.
func NewEmailForm(name, email string) validated.Validated[FieldError, Payload] {
	return validated.Combine2(ValidateName(name), ValidateEmail(email), newPayload)
}

// NewPhoneForm assembles a payload from a name and a phone number.
func NewPhoneForm(name, phone string) validated.Validated[FieldError, Payload] {
	return validated.Combine2(ValidateName(name), ValidatePhoneNumber(phone), newPayload)
}

// NewForm dispatches on the active identity kind. Exactly one identity is
// collected per submission; an unknown kind is a programming error.
func NewForm(name, rawID string, kind IdentityKind) validated.Validated[FieldError, Payload] {
	switch kind {
	case KindEmail:
		return NewEmailForm(name, rawID)
	case KindPhone:
		return NewPhoneForm(name, rawID)
	default:
		panic(fmt.Sprintf("signup: unknown identity kind %q", kind))
	}
}

func newPayload(name string, id Identity) Payload {
	return Payload{Name: name, Identity: id}
}
