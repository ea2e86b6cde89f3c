package llm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultHuggingFaceBaseURL = "https://router.huggingface.co/v1"
	defaultHuggingFaceHubURL  = "https://huggingface.co"
)

// HuggingFaceConfig configures the Hugging Face inference router backend.
type HuggingFaceConfig struct {
	Token   string
	Model   string
	BaseURL string // chat completions endpoint, defaults to the HF router
	HubURL  string // Hub API used to verify the token
}

// HuggingFaceProvider talks to the OpenAI-compatible Hugging Face router.
// Tokens are verified against the Hub, since the router has no cheap
// authenticated endpoint.
type HuggingFaceProvider struct {
	*OpenAIProvider
	token  string
	hubURL string
	http   *http.Client
}

// NewHuggingFaceProvider creates a provider for cfg.Model on the HF router.
func NewHuggingFaceProvider(cfg HuggingFaceConfig) (*HuggingFaceProvider, error) {
	if cfg.Token == "" {
		return nil, ErrMissingToken
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultHuggingFaceBaseURL
	}
	hubURL := cfg.HubURL
	if hubURL == "" {
		hubURL = defaultHuggingFaceHubURL
	}

	inner := newOpenAICompatible(ProviderHuggingFace, OpenAIConfig{
		APIKey:  cfg.Token,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}, nil)

	return &HuggingFaceProvider{
		OpenAIProvider: inner,
		token:          cfg.Token,
		hubURL:         strings.TrimRight(hubURL, "/"),
		http:           &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Authenticate calls the Hub whoami endpoint with the token.
func (p *HuggingFaceProvider) Authenticate(ctx context.Context) error {
	return bearerCheck(ctx, p.http, ProviderHuggingFace, p.hubURL+"/api/whoami-v2", p.token)
}

// bearerCheck issues GET url with the token and classifies the status.
func bearerCheck(ctx context.Context, client *http.Client, provider, url, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return &ErrProviderUnavailable{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = resp.Status
	}
	return mapStatus(provider, resp.StatusCode, fmt.Errorf("%s: %s", resp.Status, msg))
}
