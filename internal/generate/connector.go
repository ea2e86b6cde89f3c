package generate

import (
	"context"
	"log/slog"

	"github.com/abhisek/synthgen/internal/config"
	"github.com/abhisek/synthgen/internal/llm"
	"github.com/abhisek/synthgen/internal/store"
)

// LLMConfig derives the backend configuration from settings.
func LLMConfig(s config.Settings) llm.Config {
	cfg := llm.DefaultConfig()
	if s.Provider != "" {
		cfg.Provider = s.Provider
	}
	cfg.BaseURL = s.BaseURL
	cfg.HubURL = s.HubURL
	cfg.RateLimit = s.RateLimit
	cfg.Timeout = s.Timeout
	return cfg
}

// DefaultConnector connects through llm.Connect using settings. Calls are
// recorded to events when it is non-nil.
func DefaultConnector(s config.Settings, events store.EventRepo, logger *slog.Logger) Connector {
	cfg := LLMConfig(s)
	return func(ctx context.Context, m config.Model) (llm.Provider, error) {
		return llm.Connect(ctx, cfg, m.ModelID, m.AuthToken, events, logger)
	}
}
