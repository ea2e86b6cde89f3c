package llm

import (
	"context"
)

// Provider is the core abstraction for text-generation backends.
// Calls are blocking and the backend is treated as non-reentrant: callers
// invoke Generate sequentially.
type Provider interface {
	// Generate sends the conversation to the model and returns the
	// assistant's final-turn text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Authenticate verifies the configured credentials with the backend.
	// It returns *ErrAuthentication when the backend rejects them.
	Authenticate(ctx context.Context) error

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// Messages is the ordered, role-tagged conversation. System-role
	// messages are mapped to each backend's native system prompt field.
	Messages []Message

	// MaxTokens caps the number of newly generated tokens.
	MaxTokens int

	// Temperature controls randomness. Zero leaves the backend default.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the model's output.
type Response struct {
	// Content is the assistant's final-turn text, unparsed.
	Content string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// splitSystem separates system-role messages from the rest of the
// conversation. Multiple system messages are joined with blank lines.
func splitSystem(msgs []Message) (string, []Message) {
	var system string
	rest := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}
