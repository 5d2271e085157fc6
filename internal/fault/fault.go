package fault

import "errors"

// Kind classifies an expected, user-facing failure of a domain operation.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindMalformed
	KindUnauthorized
	KindForbidden
)

// Error is a domain failure. Callers branch on Kind; Message stays human-readable
// and entity-specific so the HTTP layer can pass it through verbatim.
type Error struct {
	Kind    Kind
	Entity  string
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(entity, msg string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Message: msg}
}

func Conflict(entity, field, msg string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, Field: field, Message: msg}
}

func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: msg}
}

func Malformed(field, msg string) *Error {
	return &Error{Kind: KindMalformed, Field: field, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// KindOf returns the failure kind, or KindUnknown for unexpected errors
// (storage faults and the like, which must not be disguised as domain failures).
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
