package api

import (
	"errors"
	"net/http"
	"testing"

	repository "github.com/okian/awards/internal/adapters/repository"
	"github.com/okian/awards/internal/domain/program"
	. "github.com/smartystreets/goconvey/convey"
)

func TestOpErrors(t *testing.T) {
	Convey("Given op-tagged errors", t, func() {
		cause := errors.New("unexpected EOF")

		Convey("NewKind matches its kind", func() {
			err := NewKind("api.x", ErrBadRequest)
			So(errors.Is(err, ErrBadRequest), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "api.x: bad request")
		})

		Convey("Wrap keeps the cause and ignores nil", func() {
			So(Wrap("api.x", nil), ShouldBeNil)
			err := Wrap("api.x", cause)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "api.x: unexpected EOF")
		})

		Convey("WrapKind matches both kind and cause", func() {
			err := WrapKind("api.x", ErrBadRequest, cause)
			So(errors.Is(err, ErrBadRequest), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "api.x: bad request: unexpected EOF")
			So(errors.Is(WrapKind("api.x", ErrBadRequest, nil), ErrBadRequest), ShouldBeTrue)
		})
	})
}

func TestStatusFor(t *testing.T) {
	Convey("Given domain errors wrapped by handlers", t, func() {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{Wrap("op", program.ErrUnknownProgram), http.StatusBadRequest, "unknown_program"},
			{Wrap("op", repository.ErrNotFound), http.StatusNotFound, "not_found"},
			{Wrap("op", repository.ErrCapacity), http.StatusInsufficientStorage, "capacity"},
			{WrapKind("op", ErrBadRequest, &http.MaxBytesError{Limit: 1}), http.StatusRequestEntityTooLarge, "too_large"},
			{NewKind("op", ErrBadRequest), http.StatusBadRequest, "bad_request"},
			{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
		}
		for _, tc := range cases {
			status, code := statusFor(tc.err)
			So(status, ShouldEqual, tc.status)
			So(code, ShouldEqual, tc.code)
		}
	})
}

func TestErrorTypes(t *testing.T) {
	Convey("Given HTTP status codes", t, func() {
		So(getErrorType(http.StatusInsufficientStorage), ShouldEqual, "capacity")
		So(getErrorType(http.StatusServiceUnavailable), ShouldEqual, "unavailable")
		So(getErrorType(http.StatusInternalServerError), ShouldEqual, "server_error")
		So(getErrorType(http.StatusRequestEntityTooLarge), ShouldEqual, "too_large")
		So(getErrorType(http.StatusNotFound), ShouldEqual, "not_found")
		So(getErrorType(http.StatusBadRequest), ShouldEqual, "client_error")
		So(getErrorSeverity(http.StatusInternalServerError), ShouldEqual, "high")
		So(getErrorSeverity(http.StatusInsufficientStorage), ShouldEqual, "medium")
		So(getErrorSeverity(http.StatusOK), ShouldEqual, "low")
	})
}
