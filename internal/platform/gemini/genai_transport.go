package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/config"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/generation"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/redact"
)

// contentGenerator is the slice of *genai.Models that GenAITransport uses.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		cfg *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GenAITransport implements generation.Transport with the Google GenAI SDK.
type GenAITransport struct {
	models  contentGenerator
	model   string
	timeout time.Duration
}

// NewGenAITransport creates a GenAI client for cfg. A nil httpClient lets the
// SDK use its default.
func NewGenAITransport(ctx context.Context, cfg config.LLMConfig, httpClient *http.Client) (*GenAITransport, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.Endpoint != "" {
		base, version, err := splitEndpoint(cfg.Endpoint)
		if err != nil {
			return nil, err
		}
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: base, APIVersion: version}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create GenAI client: %v", generation.ErrInvalidConfig, err)
	}

	return newGenAITransport(client.Models, cfg.ModelName, cfg.Timeout), nil
}

func newGenAITransport(models contentGenerator, model string, timeout time.Duration) *GenAITransport {
	return &GenAITransport{models: models, model: model, timeout: timeout}
}

// splitEndpoint turns ".../v1beta" into a base URL and API version, the way
// the SDK expects them.
func splitEndpoint(endpoint string) (string, string, error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("%w: endpoint %q is not an absolute URL", generation.ErrInvalidConfig, endpoint)
	}

	path := strings.Trim(u.Path, "/")
	version := ""
	if i := strings.LastIndex(path, "/"); i >= 0 {
		if strings.HasPrefix(path[i+1:], "v1") {
			version = path[i+1:]
			path = path[:i]
		}
	} else if strings.HasPrefix(path, "v1") {
		version = path
		path = ""
	}

	u.Path = "/" + path
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String(), version, nil
}

// Invoke performs one GenerateContent call.
func (t *GenAITransport) Invoke(ctx context.Context, req generation.Request) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	resp, err := t.models.GenerateContent(ctx, t.model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxTokens),
	})
	if err != nil {
		return "", apiFailure(err)
	}

	text, reason := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", generation.NewFailure(http.StatusOK, false, reason, nil)
	}
	return text, nil
}

// apiFailure classifies an SDK error. APIError carries the HTTP status;
// anything else means no response was received.
func apiFailure(err error) *generation.Failure {
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		apiErr = *apiErrPtr
	default:
		return noResponse(err)
	}

	status := apiErr.Code
	classifyAs := status
	if apiErr.Status == statusResourceExhausted {
		classifyAs = http.StatusTooManyRequests
	}
	if classifyAs == 0 {
		// An API error without a code still came from the backend.
		classifyAs = http.StatusBadGateway
	}

	detail := apiErr.Message
	if detail == "" {
		detail = apiErr.Status
	}

	f := generation.NewFailure(classifyAs, false, redact.String(detail), err)
	f.Status = status
	return f
}

// responseText returns the first candidate's text, or a reason it has none.
func responseText(resp *genai.GenerateContentResponse) (string, string) {
	if resp == nil {
		return "", "nil response"
	}
	if len(resp.Candidates) == 0 {
		return "", "no candidates in response"
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return "", "empty content in first candidate"
	}

	var b strings.Builder
	for _, p := range c.Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	if b.Len() == 0 && c.FinishReason != "" {
		return "", "no text in first candidate, finish reason " + string(c.FinishReason)
	}
	return b.String(), "no text in first candidate"
}
