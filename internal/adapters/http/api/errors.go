package api

import (
	"errors"
	"net/http"

	repository "github.com/okian/awards/internal/adapters/repository"
	service "github.com/okian/awards/internal/app"
	"github.com/okian/awards/internal/domain/eligibility"
	"github.com/okian/awards/internal/domain/program"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
)

// opError tags an error with the handler operation and a kind.
type opError struct {
	op   string
	kind error
	err  error
}

func (e *opError) Error() string {
	switch {
	case e.kind != nil && e.err != nil:
		return e.op + ": " + e.kind.Error() + ": " + e.err.Error()
	case e.err != nil:
		return e.op + ": " + e.err.Error()
	case e.kind != nil:
		return e.op + ": " + e.kind.Error()
	default:
		return e.op
	}
}

func (e *opError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.kind != nil {
		out = append(out, e.kind)
	}
	if e.err != nil {
		out = append(out, e.err)
	}
	return out
}

// NewKind returns an error of kind raised by op.
func NewKind(op string, kind error) error {
	return &opError{op: op, kind: kind}
}

// Wrap tags err with op. A nil err stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &opError{op: op, err: err}
}

// WrapKind tags err with op and kind. errors.Is matches both.
func WrapKind(op string, kind, err error) error {
	if err == nil {
		return NewKind(op, kind)
	}
	return &opError{op: op, kind: kind, err: err}
}

// statusFor maps an error kind to an HTTP status and a stable error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, program.ErrUnknownProgram):
		return http.StatusBadRequest, "unknown_program"
	case errors.Is(err, eligibility.ErrUnknownSortKey):
		return http.StatusBadRequest, "unknown_sort"
	case errors.Is(err, repository.ErrInvalidSnapshot):
		return http.StatusBadRequest, "invalid_snapshot"
	case errors.As(err, new(*http.MaxBytesError)):
		return http.StatusRequestEntityTooLarge, "too_large"
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, repository.ErrCapacity):
		return http.StatusInsufficientStorage, "capacity"
	case errors.Is(err, service.ErrNotStarted):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
