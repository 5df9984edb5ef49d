package engine

import "fmt"

// Kind classifies a rejected request.
type Kind int

const (
	// ReferenceNotFound is an unresolved section, hanger or anchor id.
	ReferenceNotFound Kind = iota + 1
	// InvalidGeometry is a non-positive length, a load position outside the
	// span, or a computation that would not produce a finite number.
	InvalidGeometry
	// InvalidFactor is a load or material factor below 1.
	InvalidFactor
	// InvalidInput is any other malformed field: a non-positive material
	// property, a negative load or an unknown option.
	InvalidInput
)

func (k Kind) String() string {
	switch k {
	case ReferenceNotFound:
		return "reference not found"
	case InvalidGeometry:
		return "invalid geometry"
	case InvalidFactor:
		return "invalid factor"
	case InvalidInput:
		return "invalid input"
	}
	return "unknown error"
}

// Error is the single error returned for a rejected request. Field is the
// request field at fault, in the dotted form used by the JSON encoding.
type Error struct {
	Kind  Kind
	Field string
	Msg   string
	Err   error // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrReferenceNotFound = &Error{Kind: ReferenceNotFound}
	ErrInvalidGeometry   = &Error{Kind: InvalidGeometry}
	ErrInvalidFactor     = &Error{Kind: InvalidFactor}
	ErrInvalidInput      = &Error{Kind: InvalidInput}
)

func geometryError(field, format string, args ...any) *Error {
	return &Error{Kind: InvalidGeometry, Field: field, Msg: fmt.Sprintf(format, args...)}
}

func factorError(field string, v float64) *Error {
	return &Error{Kind: InvalidFactor, Field: field, Msg: fmt.Sprintf("must be at least 1, got %g", v)}
}

func inputError(field, format string, args ...any) *Error {
	return &Error{Kind: InvalidInput, Field: field, Msg: fmt.Sprintf(format, args...)}
}
