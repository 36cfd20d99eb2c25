package content

import (
	"errors"

	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/generation"
)

// User-facing messages for generation errors.
const (
	MsgTemporarilyUnavailable = "The AI service is temporarily unavailable. Please try again in a few minutes."
	MsgUnusableResponse       = "We couldn't use the AI service's response. Please try again."
	MsgInvalidRequest         = "The request could not be processed. Please check your input."
	MsgUnexpected             = "Something went wrong while generating content."
)

// UserMessage maps an error from a Writer or generation.Generator to a
// message safe to show an end user. It returns "" for a nil error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	if kind, ok := generation.KindOf(err); ok {
		switch kind {
		case generation.EmptyOutput:
			return MsgUnusableResponse
		case generation.QuotaExceeded, generation.UpstreamError, generation.TransportError:
			return MsgTemporarilyUnavailable
		}
	}

	switch {
	case errors.Is(err, generation.ErrInvalidRequest):
		return MsgInvalidRequest
	default:
		return MsgUnexpected
	}
}
