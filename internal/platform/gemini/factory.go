package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/config"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/generation"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/platform/oracle"
)

// NewGenerator wires a generation.Service from cfg. Without a credential the
// service answers from the mock oracle; with one it uses the transport named
// by cfg.Provider. The mode is fixed for the life of the returned service.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*generation.Service, error) {
	return newGenerator(ctx, logger, cfg, nil)
}

func newGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	httpClient *http.Client,
) (*generation.Service, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	defaults := defaultsFrom(cfg)

	if !cfg.Live() {
		logger.InfoContext(ctx, "no LLM credential configured, using mock generation")
		return generation.NewMockService(logger, oracle.New(), defaults)
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	var (
		transport generation.Transport
		err       error
	)
	switch cfg.Provider {
	case providerGenAI:
		transport, err = NewGenAITransport(ctx, cfg, httpClient)
	default:
		transport, err = NewRESTTransport(cfg, httpClient)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s transport: %w", cfg.Provider, err)
	}

	logger.InfoContext(ctx, "using live generation",
		"provider", cfg.Provider,
		"model", cfg.ModelName)
	return generation.NewLiveService(logger, transport, defaults)
}

// defaultsFrom takes the call defaults from cfg. A zero-value cfg, one that
// did not come through config.Load, gets the standard defaults.
func defaultsFrom(cfg config.LLMConfig) generation.Defaults {
	if cfg.DefaultMaxTokens <= 0 {
		return generation.StandardDefaults()
	}
	return generation.Defaults{
		MaxTokens:   cfg.DefaultMaxTokens,
		Temperature: cfg.DefaultTemperature,
	}
}
