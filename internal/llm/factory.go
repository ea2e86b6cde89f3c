package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/synthgen/internal/store"
)

// Connect builds the backend for modelID, authenticates with token, and
// returns it wrapped with middleware: caller → limits → logging → base.
// Connect is the single amortized setup step of a generation run.
//
// A missing token yields ErrMissingToken; a rejected one *ErrAuthentication.
// Failed model calls are not retried.
func Connect(ctx context.Context, cfg Config, modelID, token string, eventRepo store.EventRepo, logger *slog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrMissingToken
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderHuggingFace:
		base, err = NewHuggingFaceProvider(HuggingFaceConfig{
			Token:   token,
			Model:   modelID,
			BaseURL: cfg.BaseURL,
			HubURL:  cfg.HubURL,
		})
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(OpenAIConfig{APIKey: token, Model: modelID, BaseURL: cfg.BaseURL})
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(OpenRouterConfig{APIKey: token, Model: modelID, BaseURL: cfg.BaseURL})
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(AnthropicConfig{APIKey: token, Model: modelID, BaseURL: cfg.BaseURL})
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, GeminiConfig{APIKey: token, Model: modelID})
	case ProviderMock:
		base = NewEchoProvider(modelID)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logger.Info("authenticating model backend", "provider", cfg.Provider, "model", modelID)
	if err := base.Authenticate(ctx); err != nil {
		return nil, err
	}

	logged := WithLogging(base, eventRepo, logger)
	return WithLimits(logged, cfg.RateLimit, cfg.Timeout), nil
}
