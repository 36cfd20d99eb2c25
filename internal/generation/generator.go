package generation

import (
	"context"
)

// Generator is what content generators depend on. Service implements it;
// tests substitute mocks.Generator.
type Generator interface {
	// GenerateText returns non-empty text for prompt or an error. In live
	// mode the error is a *Failure; a malformed option yields
	// ErrInvalidRequest.
	GenerateText(ctx context.Context, prompt string, opts ...Option) (string, error)
}

// Transport performs exactly one request against a live backend.
//
// Implementations must return either non-empty text and a nil error, or a
// *Failure produced through Classify. They must not retry, and must honor
// the deadline carried by ctx.
type Transport interface {
	Invoke(ctx context.Context, req Request) (string, error)
}

// Synthesizer produces offline responses when no backend is configured. It
// must be deterministic and must always return non-empty text.
type Synthesizer interface {
	Synthesize(prompt string) string
}
