package llm

import (
	"fmt"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
	ProviderOpenRouter  = "openrouter"
	ProviderAnthropic   = "anthropic"
	ProviderGemini      = "gemini"
	ProviderMock        = "mock"
)

// Config holds backend selection and call limits. The model identifier and
// auth token come from the generation config, not from here.
type Config struct {
	// Provider selects which backend to use.
	// Values: "huggingface", "openai", "openrouter", "anthropic", "gemini", "mock"
	Provider string

	// BaseURL overrides the backend's API endpoint. Optional.
	BaseURL string

	// HubURL overrides the Hugging Face Hub endpoint used to verify tokens.
	HubURL string

	// RateLimit caps requests per second. Zero means unlimited.
	RateLimit float64

	// Timeout is the maximum duration of a single model call. Default: 2m.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderHuggingFace,
		Timeout:  2 * time.Minute,
	}
}

// Validate checks that the provider is known and limits are sane.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderHuggingFace, ProviderOpenAI, ProviderOpenRouter,
		ProviderAnthropic, ProviderGemini, ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative, got %v", c.RateLimit)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}
