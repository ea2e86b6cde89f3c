package llm

import (
	"context"
	"fmt"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content string
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for testing and offline runs.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	model     string
	Calls     []Request

	// Fallback answers once the queue is drained. When nil, a drained queue
	// yields ErrProviderUnavailable.
	Fallback func(call int, req Request) MockResponse

	// AuthErr is returned by Authenticate.
	AuthErr error
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses, model: "mock"}
}

// NewEchoProvider returns a MockProvider that answers every request with a
// well-formed OUTPUT/REASONING pair. It backs SYNTH_PROVIDER=mock dry runs.
func NewEchoProvider(model string) *MockProvider {
	if model == "" {
		model = "mock"
	}
	return &MockProvider{
		model: model,
		Fallback: func(call int, _ Request) MockResponse {
			return MockResponse{
				Content: fmt.Sprintf("OUTPUT: synthetic sample %d\nREASONING: produced offline by the mock backend", call),
			}
		},
	}
}

// Generate returns the next canned response, the fallback, or
// ErrProviderUnavailable if neither is available.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var resp MockResponse
	switch {
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	case m.Fallback != nil:
		resp = m.Fallback(len(m.Calls), req)
	default:
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      m.model,
		StopReason: "end",
	}, nil
}

// Authenticate returns AuthErr.
func (m *MockProvider) Authenticate(context.Context) error {
	return m.AuthErr
}

// ModelID returns the configured model, "mock" by default.
func (m *MockProvider) ModelID() string {
	return m.model
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
