package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/redact"
)

const (
	modeLive = "live"
	modeMock = "mock"

	// mockPlaceholder is returned if a Synthesizer breaks its contract and
	// produces nothing, so mock mode still cannot fail.
	mockPlaceholder = `{"status":"ok"}`
)

// Service is the generation façade. It is safe for concurrent use; it holds
// no mutable state.
type Service struct {
	logger    *slog.Logger
	transport Transport
	oracle    Synthesizer
	defaults  Defaults
}

// NewLiveService returns a Service that sends every request to transport.
func NewLiveService(logger *slog.Logger, transport Transport, defaults Defaults) (*Service, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if transport == nil {
		return nil, fmt.Errorf("%w: live mode requires a transport", ErrInvalidConfig)
	}
	if err := defaults.check(); err != nil {
		return nil, err
	}
	return &Service{logger: logger, transport: transport, defaults: defaults}, nil
}

// NewMockService returns a Service that answers every request from oracle.
func NewMockService(logger *slog.Logger, oracle Synthesizer, defaults Defaults) (*Service, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if oracle == nil {
		return nil, fmt.Errorf("%w: mock mode requires a synthesizer", ErrInvalidConfig)
	}
	if err := defaults.check(); err != nil {
		return nil, err
	}
	return &Service{logger: logger, oracle: oracle, defaults: defaults}, nil
}

func (d Defaults) check() error {
	if _, err := d.NewRequest(""); err != nil {
		return fmt.Errorf("%w: bad defaults: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Live reports whether the service talks to a real backend.
func (s *Service) Live() bool {
	return s.transport != nil
}

// GenerateText builds a request from prompt and opts and runs it. Omitted
// options take the service defaults.
func (s *Service) GenerateText(ctx context.Context, prompt string, opts ...Option) (string, error) {
	req, err := s.defaults.NewRequest(prompt, opts...)
	if err != nil {
		return "", err
	}
	return s.Generate(ctx, req)
}

// Generate runs a prepared request and writes exactly one log entry for it.
// The entry carries parameters and outcome, never prompt or response text.
// A request with out-of-range parameters fails with ErrInvalidRequest before
// anything is sent.
func (s *Service) Generate(ctx context.Context, req Request) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	start := time.Now()

	var (
		text string
		err  error
		mode = modeMock
	)
	if s.Live() {
		mode = modeLive
		text, err = s.invoke(ctx, req)
	} else {
		text = s.synthesize(req.Prompt)
	}

	attrs := []any{
		"call_id", uuid.NewString(),
		"mode", mode,
		"credential_present", s.Live(),
		"max_tokens", req.MaxTokens,
		"temperature", req.Temperature,
		"prompt_length", len(req.Prompt),
		"duration_ms", time.Since(start).Milliseconds(),
	}

	if err != nil {
		var f *Failure
		if errors.As(err, &f) {
			attrs = append(attrs, "failure_kind", f.Kind.String(), "status", f.Status)
		}
		s.logger.WarnContext(ctx, "text generation failed", attrs...)
		return "", err
	}

	attrs = append(attrs, "response_length", len(text))
	s.logger.InfoContext(ctx, "text generation completed", attrs...)
	return text, nil
}

// invoke calls the transport and enforces its contract: any error leaves as
// a *Failure and empty text is never a success.
func (s *Service) invoke(ctx context.Context, req Request) (string, error) {
	text, err := s.transport.Invoke(ctx, req)
	if err != nil {
		var f *Failure
		if errors.As(err, &f) {
			return "", err
		}
		return "", &Failure{Kind: TransportError, Detail: redact.Error(err), Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &Failure{Kind: EmptyOutput, Detail: "transport returned empty text"}
	}
	return text, nil
}

func (s *Service) synthesize(prompt string) string {
	text := s.oracle.Synthesize(prompt)
	if strings.TrimSpace(text) == "" {
		return mockPlaceholder
	}
	return text
}
