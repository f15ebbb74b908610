// Package apperr defines the error taxonomy shared by all collaborators.
// Every failure the service can surface maps to exactly one Kind, and each
// Kind maps to the HTTP status the caller sees.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure by its cause.
type Kind int

const (
	// KindInvalidRequest is a client-caused validation failure.
	KindInvalidRequest Kind = iota
	// KindConfiguration is a missing or unusable deployment setting.
	KindConfiguration
	// KindUpstreamHTTP is a non-2xx status from the generation API,
	// passed through to the caller verbatim.
	KindUpstreamHTTP
	// KindUpstreamProtocol is a malformed or unexpected upstream response.
	KindUpstreamProtocol
	// KindDecoding is a malformed base64 payload.
	KindDecoding
	// KindStorage is a transport or permission failure from the object store.
	KindStorage
	// KindInternal is the catch-all for unanticipated failures.
	KindInternal
)

// Error is a classified failure carrying the HTTP status and the
// human-readable detail returned to the caller.
type Error struct {
	Kind   Kind
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidRequest reports a client-caused validation failure (400).
func InvalidRequest(detail string) *Error {
	return &Error{Kind: KindInvalidRequest, Status: http.StatusBadRequest, Detail: detail}
}

// Configuration reports a missing deployment setting (500).
func Configuration(detail string) *Error {
	return &Error{Kind: KindConfiguration, Status: http.StatusInternalServerError, Detail: detail}
}

// Upstream reports a non-2xx generation API response; status is the
// upstream status code, surfaced unchanged.
func Upstream(status int, detail string) *Error {
	return &Error{Kind: KindUpstreamHTTP, Status: status, Detail: detail}
}

// Protocol reports an unexpected upstream response shape (500).
func Protocol(detail string, err error) *Error {
	return &Error{Kind: KindUpstreamProtocol, Status: http.StatusInternalServerError, Detail: detail, Err: err}
}

// Decoding reports a malformed base64 payload (500).
func Decoding(detail string, err error) *Error {
	return &Error{Kind: KindDecoding, Status: http.StatusInternalServerError, Detail: detail, Err: err}
}

// Storage reports an object store failure (500).
func Storage(detail string, err error) *Error {
	return &Error{Kind: KindStorage, Status: http.StatusInternalServerError, Detail: detail, Err: err}
}

// Internal wraps an unanticipated failure (500).
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Detail: "internal server error", Err: err}
}

// StatusOf returns the HTTP status for err. Errors outside the taxonomy
// are treated as internal.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// DetailOf returns the caller-facing detail message for err.
func DetailOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return "internal server error"
}

// KindOf returns err's Kind, or KindInternal for errors outside the taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
