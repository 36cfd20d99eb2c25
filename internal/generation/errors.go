package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrQuotaExceeded is wrapped by failures of kind QuotaExceeded
	ErrQuotaExceeded = errors.New("text generation quota exceeded")

	// ErrEmptyOutput is wrapped by failures of kind EmptyOutput
	ErrEmptyOutput = errors.New("language model returned no text")

	// ErrTransport is wrapped by failures of kind TransportError
	ErrTransport = errors.New("could not reach text generation backend")

	// ErrUpstream is wrapped by failures of kind UpstreamError
	ErrUpstream = errors.New("text generation backend returned an error")

	// ErrInvalidRequest is returned when request options are out of range
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
