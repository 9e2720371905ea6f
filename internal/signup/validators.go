package signup

import (
	"strings"

	"enroll/pkg/validated"
)

// Validation messages are user-facing copy. The demo server and the state
// reducers surface them verbatim, so treat changes as contract changes.
const (
	MsgNameBlank   = "Name can't be blank"
	MsgEmailNoAt   = "Email must contain '@'"
	MsgPhonePrefix = "Phone number must start with '+'"
	MsgPhoneLength = "Phone number must be longer than 4 characters"
)

// ValidateName accepts any input with at least one non-space character.
func ValidateName(raw string) validated.Validated[FieldError, string] {
	if strings.TrimSpace(raw) == "" {
		return validated.Invalid[FieldError, string](FieldError{
			Field:    FieldName,
			Messages: []string{MsgNameBlank},
		})
	}
	return validated.Valid[FieldError](raw)
}

// ValidateEmail checks only for the presence of '@'. The rule is deliberately
// weak: the server owns real address verification, and tightening it here
// changes which inputs ever reach the server.
func ValidateEmail(raw string) validated.Validated[FieldError, Identity] {
	if !strings.ContainsRune(raw, '@') {
		return validated.Invalid[FieldError, Identity](FieldError{
			Field:    FieldEmail,
			Messages: []string{MsgEmailNoAt},
		})
	}
	return validated.Valid[FieldError](Identity{kind: KindEmail, value: raw})
}

// ValidatePhoneNumber checks both phone rules independently and reports every
// one that failed in a single FieldError, prefix rule first.
func ValidatePhoneNumber(raw string) validated.Validated[FieldError, Identity] {
	var msgs []string
	if !strings.HasPrefix(raw, "+") {
		msgs = append(msgs, MsgPhonePrefix)
	}
	if len(raw) <= 4 {
		msgs = append(msgs, MsgPhoneLength)
	}
	if len(msgs) > 0 {
		return validated.Invalid[FieldError, Identity](FieldError{
			Field:    FieldPhoneNumber,
			Messages: msgs,
		})
	}
	return validated.Valid[FieldError](Identity{kind: KindPhone, value: raw})
}
