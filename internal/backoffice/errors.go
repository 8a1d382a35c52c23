package backoffice

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mmynk/tutorbooks/internal/storage"
)

// Kind classifies a failure so callers can react without parsing messages.
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindValidationFailed    Kind = "validation_failed"
	KindInsufficientBalance Kind = "insufficient_balance"
	KindConflict            Kind = "conflict"
	KindInternal            Kind = "internal"
)

// HTTPStatus is the status code an HTTP layer should answer with.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidationFailed, KindInsufficientBalance:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is the failure type returned by every Service method.
// Message is safe to show to users; Fields holds per-field validation messages.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the Kind of err, or KindInternal when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func notFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found: %s", entity, id)}
}

func invalid(format string, args ...any) *Error {
	return &Error{Kind: KindValidationFailed, Message: fmt.Sprintf(format, args...)}
}

func invalidField(field, msg string) *Error {
	return &Error{Kind: KindValidationFailed, Message: msg, Fields: map[string]string{field: msg}}
}

func conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func insufficient(format string, available, required float64) *Error {
	return &Error{Kind: KindInsufficientBalance, Message: fmt.Sprintf(format, available, required)}
}

// fromStore turns a storage error into an *Error. entity and id name the
// record the caller was working on; they are used for not-found messages.
// Errors that are already *Error pass through.
func fromStore(err error, entity, id string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		out := notFound(entity, id)
		out.cause = err
		return out
	case errors.Is(err, storage.ErrDuplicate):
		return &Error{Kind: KindConflict, Message: entity + " already exists", cause: err}
	case errors.Is(err, storage.ErrReferenced):
		return &Error{Kind: KindConflict, Message: entity + " is referenced by other records", cause: err}
	case errors.Is(err, storage.ErrStale):
		return &Error{Kind: KindConflict, Message: "student balance was changed by another request, please retry", cause: err}
	default:
		slog.Error("Unexpected storage error", "entity", entity, "id", id, "error", err)
		return &Error{Kind: KindInternal, Message: "internal error", cause: err}
	}
}
