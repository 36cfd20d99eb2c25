package generation

import (
	"errors"
	"fmt"
	"net/http"
)

// FailureKind is the closed set of classified generation failures.
type FailureKind int

const (
	// QuotaExceeded: the backend reported a rate or quota limit (HTTP 429).
	QuotaExceeded FailureKind = iota + 1
	// EmptyOutput: a successful response that carried no text.
	EmptyOutput
	// TransportError: no response at all (network failure, timeout, cancellation).
	TransportError
	// UpstreamError: any other non-2xx response.
	UpstreamError
)

// String returns the kind's stable name, used in logs.
func (k FailureKind) String() string {
	switch k {
	case QuotaExceeded:
		return "quota_exceeded"
	case EmptyOutput:
		return "empty_output"
	case TransportError:
		return "transport_error"
	case UpstreamError:
		return "upstream_error"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// sentinel returns the package error each kind wraps.
func (k FailureKind) sentinel() error {
	switch k {
	case QuotaExceeded:
		return ErrQuotaExceeded
	case EmptyOutput:
		return ErrEmptyOutput
	case TransportError:
		return ErrTransport
	default:
		return ErrUpstream
	}
}

// Classify maps a transport outcome to a FailureKind. status is the HTTP
// status of the response, or 0 when no response was received. hasPayload
// reports whether the response carried any generated text.
//
// The second result is false only for a 2xx response with a payload, which
// is not a failure. The mapping never looks at error or body text.
func Classify(status int, hasPayload bool) (FailureKind, bool) {
	switch {
	case status == 0:
		return TransportError, true
	case status == http.StatusTooManyRequests:
		return QuotaExceeded, true
	case status >= 200 && status <= 299:
		if hasPayload {
			return 0, false
		}
		return EmptyOutput, true
	default:
		return UpstreamError, true
	}
}

// Failure is the error returned for every live-mode generation failure.
type Failure struct {
	Kind FailureKind
	// Detail is a redacted, human-readable description for logs.
	Detail string
	// Status is the HTTP status, or 0 when no response was received.
	Status int
	// Err is the underlying cause, if any.
	Err error
}

// NewFailure builds a Failure by classifying status and hasPayload. It
// returns nil when the pair describes a success.
func NewFailure(status int, hasPayload bool, detail string, cause error) *Failure {
	kind, failed := Classify(status, hasPayload)
	if !failed {
		return nil
	}
	return &Failure{Kind: kind, Detail: detail, Status: status, Err: cause}
}

func (f *Failure) Error() string {
	msg := f.Kind.sentinel().Error()
	if f.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, f.Status)
	}
	if f.Detail != "" {
		msg += ": " + f.Detail
	}
	return msg
}

// Unwrap exposes both the kind's sentinel and the cause, so errors.Is works
// against ErrQuotaExceeded and friends as well as context.DeadlineExceeded.
func (f *Failure) Unwrap() []error {
	if f.Err == nil {
		return []error{f.Kind.sentinel()}
	}
	return []error{f.Kind.sentinel(), f.Err}
}

// Temporary reports whether the condition is expected to clear on its own
// (rate limit, network). Callers map these to "temporarily unavailable".
func (f *Failure) Temporary() bool {
	return f.Kind == QuotaExceeded || f.Kind == TransportError
}

// KindOf returns the FailureKind carried by err, if any.
func KindOf(err error) (FailureKind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return 0, false
}
