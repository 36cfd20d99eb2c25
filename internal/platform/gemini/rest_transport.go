package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/config"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/generation"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/redact"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 4 << 20

// RESTTransport implements generation.Transport over plain HTTP using the
// generateContent envelope.
type RESTTransport struct {
	httpClient *http.Client
	url        string
	apiKey     string
	timeout    time.Duration
}

// NewRESTTransport creates a RESTTransport from configuration. A nil
// httpClient uses http.DefaultClient; the per-call timeout comes from cfg.
func NewRESTTransport(cfg config.LLMConfig, httpClient *http.Client) (*RESTTransport, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	base, err := url.Parse(cfg.Endpoint)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: endpoint %q is not an absolute URL", generation.ErrInvalidConfig, cfg.Endpoint)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &RESTTransport{
		httpClient: httpClient,
		url: fmt.Sprintf("%s/models/%s:generateContent",
			strings.TrimRight(base.String(), "/"), url.PathEscape(cfg.ModelName)),
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
	}, nil
}

// Invoke performs one POST and returns the first candidate's text.
func (t *RESTTransport) Invoke(ctx context.Context, req generation.Request) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: req.Prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", t.apiKey)

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return "", noResponse(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &generation.Failure{
			Kind:   generation.TransportError,
			Status: resp.StatusCode,
			Detail: "failed to read response body: " + redact.Error(err),
			Err:    err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", statusFailure(resp.StatusCode, raw)
	}

	var envelope generateContentResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", generation.NewFailure(resp.StatusCode, false, "unparseable response envelope", err)
	}

	text := envelope.text()
	if strings.TrimSpace(text) == "" {
		return "", generation.NewFailure(resp.StatusCode, false, envelope.emptyReason(), nil)
	}

	return text, nil
}

// noResponse classifies a request that never produced a response.
func noResponse(err error) *generation.Failure {
	detail := redact.Error(err)
	if errors.Is(err, context.DeadlineExceeded) {
		detail = "deadline exceeded: " + detail
	}
	return generation.NewFailure(0, false, detail, err)
}

// statusFailure classifies a non-2xx response. A RESOURCE_EXHAUSTED status
// in the error envelope counts as a quota failure whatever the HTTP code.
func statusFailure(status int, raw []byte) *generation.Failure {
	detail := strings.TrimSpace(string(raw))

	var envelope errorEnvelope
	classifyAs := status
	if json.Unmarshal(raw, &envelope) == nil {
		if envelope.Error.Message != "" {
			detail = envelope.Error.Message
		}
		if envelope.Error.Status == statusResourceExhausted {
			classifyAs = http.StatusTooManyRequests
		}
	}
	if detail == "" {
		detail = http.StatusText(status)
	}

	f := generation.NewFailure(classifyAs, false, redact.String(detail), nil)
	f.Status = status
	return f
}
