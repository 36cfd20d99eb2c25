package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/config"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/generation"
)

const (
	providerREST  = "rest"
	providerGenAI = "genai"
)

// validateConfig checks the settings live mode depends on. It never logs the
// credential itself.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	logger.DebugContext(ctx, "validating live LLM configuration",
		"provider", cfg.Provider,
		"model", cfg.ModelName)

	if cfg.APIKey == "" {
		logger.ErrorContext(ctx, "missing API key for live mode")
		return fmt.Errorf("%w: api key cannot be empty in live mode", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		logger.ErrorContext(ctx, "missing model name for live mode")
		return fmt.Errorf("%w: model name cannot be empty in live mode", generation.ErrInvalidConfig)
	}

	switch cfg.Provider {
	case providerREST, providerGenAI:
	case "":
		return fmt.Errorf("%w: provider cannot be empty in live mode", generation.ErrInvalidConfig)
	default:
		logger.ErrorContext(ctx, "unknown LLM provider", "provider", cfg.Provider)
		return fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}

	if cfg.Timeout < 0 {
		logger.WarnContext(ctx, "negative LLM timeout",
			"value", cfg.Timeout,
			"action", "no per-call timeout applied")
	}

	return nil
}
