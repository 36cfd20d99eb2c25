package gemini

import "strings"

// generateContentRequest is the body POSTed to models/{model}:generateContent.
type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text,omitempty"`
}

// generateContentResponse is the subset of the response envelope we read.
// Only the first candidate is consumed.
type generateContentResponse struct {
	Candidates     []candidate     `json:"candidates"`
	PromptFeedback *promptFeedback `json:"promptFeedback,omitempty"`
}

type candidate struct {
	Content      *content `json:"content"`
	FinishReason string   `json:"finishReason,omitempty"`
}

type promptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// text concatenates the text parts of the first candidate.
func (r *generateContentResponse) text() string {
	if len(r.Candidates) == 0 || r.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// emptyReason describes why a successful envelope carried no text.
func (r *generateContentResponse) emptyReason() string {
	switch {
	case r.PromptFeedback != nil && r.PromptFeedback.BlockReason != "":
		return "prompt blocked: " + r.PromptFeedback.BlockReason
	case len(r.Candidates) == 0:
		return "no candidates in response"
	case r.Candidates[0].FinishReason != "":
		return "no text in first candidate, finish reason " + r.Candidates[0].FinishReason
	default:
		return "no text in first candidate"
	}
}

// errorEnvelope is the Google API error body: {"error":{"code":..,"message":..,"status":..}}.
type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// statusResourceExhausted is the canonical status name backends use for
// quota and rate limits, sometimes paired with an HTTP code other than 429.
const statusResourceExhausted = "RESOURCE_EXHAUSTED"
