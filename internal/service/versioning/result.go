package versioning

import (
	"errors"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

// FailureCode enumerates every expected failure an operation can report.
// Expected failures are values, not errors: callers pattern-match and render
// them; nothing here becomes a transport-level 500.
type FailureCode string

const (
	FailUnauthenticated FailureCode = "unauthenticated"
	FailNotFound        FailureCode = "not_found"
	FailPermission      FailureCode = "insufficient_permission"
	FailInvalidValue    FailureCode = "invalid_value"
	FailAlreadyModified FailureCode = "already_modified"
	FailAlreadyExists   FailureCode = "already_exists"
)

// Failure describes one expected failure: what went wrong, which input
// parameter it concerns (may be empty), and a human-readable message.
type Failure struct {
	Code    FailureCode
	Param   string
	Message string
}

// Result is the tagged outcome of an operation: either Row (success) or
// Failure, never both.
type Result[R any] struct {
	Row     R
	Failure *Failure
}

// OK reports whether the operation succeeded.
func (r Result[R]) OK() bool { return r.Failure == nil }

func ok[R any](row R) Result[R] {
	return Result[R]{Row: row}
}

func fail[R any](code FailureCode, param, message string) Result[R] {
	return Result[R]{Failure: &Failure{Code: code, Param: param, Message: message}}
}

// failFromErr converts domain sentinel errors raised by the store into
// expected failures. Infrastructure errors stay plain errors and bubble up.
func failFromErr[R any](err error, param string) (Result[R], bool) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail[R](FailNotFound, param, "not found"), true
	case errors.Is(err, domain.ErrAlreadyModified):
		return fail[R](FailAlreadyModified, param, "modified by another request"), true
	case errors.Is(err, domain.ErrAlreadyExists):
		return fail[R](FailAlreadyExists, param, "already exists"), true
	case errors.Is(err, domain.ErrValidation):
		return fail[R](FailInvalidValue, param, err.Error()), true
	}
	return Result[R]{}, false
}
