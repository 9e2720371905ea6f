// Package state holds the UI-facing presentation snapshot, the pure reducers
// that produce new snapshots, and the observable store that publishes them.
package state

import (
	"fmt"

	"enroll/internal/signup"
)

// MsgConnectivity is the fixed copy shown for transport faults. The
// underlying cause stays in logs; it is never rendered.
const MsgConnectivity = "Couldn't reach the server. Check your connection and try again."

// FieldState is one rendered input: its current raw value and, when the last
// submission faulted it, a single user-facing message. Single-cause fields
// keep this optional-string shape on purpose; multi-cause rules collapse to
// their first message at the presentation boundary.
type FieldState struct {
	Value string
	Error string // empty when the field has no error
}

// Form is the complete snapshot the UI renders from. Every transition
// replaces the whole value; a published Form is never mutated.
type Form struct {
	Busy    bool
	Message string // top-level banner, empty when absent
	Kind    signup.IdentityKind
	Name    FieldState
	ID      FieldState
}

// NewForm returns the initial snapshot for a fresh sign-up session.
func NewForm() Form {
	return Form{Kind: signup.KindEmail}
}

// BeginSubmit marks the form busy, records the submitted raw values, and
// clears every error and the banner. This is the snapshot observers see
// before the remote call starts.
func BeginSubmit(f Form, name, id string, kind signup.IdentityKind) Form {
	f.Busy = true
	f.Message = ""
	f.Kind = kind
	f.Name = FieldState{Value: name}
	f.ID = FieldState{Value: id}
	return f
}

// Reduce folds a submission failure into the snapshot. Field errors surface
// only for the name field and for whichever identity field is active; an
// unknown error variant is a programming error.
func Reduce(f Form, err signup.SubmitError) Form {
	f.Busy = false
	switch e := err.(type) {
	case *signup.ValidationError:
		f.Name.Error = e.FirstMessage(signup.FieldName)
		f.ID.Error = e.FirstMessage(f.Kind.Field())
	case *signup.HTTPError:
		f.Message = e.Message
	case *signup.ConnectivityError:
		f.Message = MsgConnectivity
	default:
		panic(fmt.Sprintf("state: unknown submit error %T", err))
	}
	return f
}

// Settle marks a successful submission: not busy, no errors, no banner.
func Settle(f Form) Form {
	f.Busy = false
	f.Message = ""
	f.Name.Error = ""
	f.ID.Error = ""
	return f
}

// ToggleKind switches which identity the form collects. It does not
// revalidate anything; the new rule applies on the next submission.
func ToggleKind(f Form) Form {
	f.Kind = f.Kind.Toggle()
	return f
}

// SetName records a live edit of the name field without validating it.
func SetName(f Form, value string) Form {
	f.Name.Value = value
	return f
}

// SetID records a live edit of the identity field without validating it.
func SetID(f Form, value string) Form {
	f.ID.Value = value
	return f
}
