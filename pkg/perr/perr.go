// Package perr defines the error taxonomy shared by every pipeline.
//
// Only NotFound and InvalidInput are terminal at the pipeline level
// (they abort the call before any HTTP traffic is generated). The rest —
// ValidationError, TransportError, ResponseShapeError — are recovered by
// the batch executor's retry cascade and never propagate out of
// pkg/executor on their own.
package perr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound means the requested student identity did not resolve.
var ErrNotFound = errors.New("student not found")

// ErrInvalidInput means the expander produced zero request inputs, or a
// structural invariant on the profile failed.
var ErrInvalidInput = errors.New("invalid input")

// NotFound wraps ErrNotFound with the identity that failed to resolve.
func NotFound(studentID string) error {
	return fmt.Errorf("student %q: %w", studentID, ErrNotFound)
}

// InvalidInput wraps ErrInvalidInput with a human-readable reason.
func InvalidInput(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrInvalidInput)
}

// InvalidInputf is InvalidInput with fmt.Sprintf-style formatting.
func InvalidInputf(format string, args ...any) error {
	return InvalidInput(fmt.Sprintf(format, args...))
}

// FieldError is one entry of a ValidationError's detail list, mirroring
// the upstream inference server's HTTP 422 `{detail: [{loc, msg}]}` body.
type FieldError struct {
	Loc []string
	Msg string
}

// ValidationError is raised when the inference server responds 422 with
// a structured field-error body. The executor does not single it out:
// like any other failed call it sends the inputs on through the Stage
// 2/3 retry cascade; inputs that still fail contribute no results, and
// sibling chunks/groups continue.
type ValidationError struct {
	Endpoint string
	Fields   []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, strings.Join(f.Loc, ".")+" - "+f.Msg)
	}
	return fmt.Sprintf("validation error from %s: %s", e.Endpoint, strings.Join(parts, "; "))
}

// TransportError covers HTTP timeouts, connection failures, and non-422
// non-2xx statuses. Like every non-terminal error, it feeds the retry cascade.
type TransportError struct {
	Endpoint   string
	StatusCode int // 0 when the failure never reached an HTTP response
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("transport error calling %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("transport error calling %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseShapeError means the response parsed as JSON but one or more
// elements failed per-element schema validation. Offending elements are
// dropped with a warning by the caller; this error type exists for
// observability, it is never raised to abort a call.
type ResponseShapeError struct {
	Endpoint string
	Reason   string
}

func (e *ResponseShapeError) Error() string {
	return fmt.Sprintf("response shape error from %s: %s", e.Endpoint, e.Reason)
}

// IsTerminal reports whether err should abort the pipeline call
// immediately rather than being recovered by the retry cascade.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput)
}
