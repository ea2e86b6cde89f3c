package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: "OUTPUT: a\nREASONING: b", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: "OUTPUT: c"},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Content != "OUTPUT: a\nREASONING: b" {
		t.Fatalf("unexpected content %q", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Content != "OUTPUT: c" {
		t.Fatalf("unexpected content %q", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_FallbackAfterQueue(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "queued"})
	mock.Fallback = func(call int, _ Request) MockResponse {
		return MockResponse{Content: "fallback"}
	}

	for i, want := range []string{"queued", "fallback", "fallback"} {
		resp, err := mock.Generate(context.Background(), Request{})
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if resp.Content != want {
			t.Errorf("call %d = %q, want %q", i, resp.Content, want)
		}
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "x"})

	req := Request{
		Messages: []Message{
			{Role: RoleSystem, Content: "sys"},
			{Role: RoleUser, Content: "hello"},
		},
		MaxTokens: 64,
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Messages[0].Content != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].Messages[0].Content)
	}
	if mock.Calls[0].MaxTokens != 64 {
		t.Fatalf("expected MaxTokens 64, got %d", mock.Calls[0].MaxTokens)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_CancelledContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "x"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := mock.Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEchoProvider_WellFormed(t *testing.T) {
	p := NewEchoProvider("meta-llama/Llama-3.2-3B-Instruct")
	if p.ModelID() != "meta-llama/Llama-3.2-3B-Instruct" {
		t.Fatalf("model = %q", p.ModelID())
	}
	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(resp.Content, "OUTPUT: ") || !strings.Contains(resp.Content, "\nREASONING: ") {
		t.Fatalf("unexpected content %q", resp.Content)
	}
}

func TestSplitSystem(t *testing.T) {
	system, rest := splitSystem([]Message{
		{Role: RoleSystem, Content: "one"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleSystem, Content: "two"},
	})
	if system != "one\n\ntwo" {
		t.Errorf("system = %q", system)
	}
	if len(rest) != 1 || rest[0].Content != "hi" {
		t.Errorf("rest = %+v", rest)
	}
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	if id := RunIDFrom(ctx); id != "" {
		t.Fatalf("expected empty run ID, got %q", id)
	}

	ctx = WithPurpose(ctx, "generate")
	ctx = WithRunID(ctx, "run-1")
	if p := PurposeFrom(ctx); p != "generate" {
		t.Fatalf("expected 'generate', got %q", p)
	}
	if id := RunIDFrom(ctx); id != "run-1" {
		t.Fatalf("expected 'run-1', got %q", id)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"anthropic", Config{Provider: "anthropic"}, false},
		{"mock", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
		{"negative rate", Config{Provider: "openai", RateLimit: -1}, true},
		{"negative timeout", Config{Provider: "openai", Timeout: -time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		known bool
	}{
		{"gpt-4o-mini", true},
		{"openai/gpt-4o-mini", true},
		{"gpt-4o-mini:some-provider", true},
		{"meta-llama/Llama-3.2-3B-Instruct", false},
	}
	for _, tt := range tests {
		got := LookupCost(tt.model)
		if (got != nil) != tt.known {
			t.Errorf("LookupCost(%q) known = %v, want %v", tt.model, got != nil, tt.known)
		}
	}

	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 2}
	if got := c.Cost(1_000_000, 500_000); got != 2 {
		t.Errorf("Cost = %v, want 2", got)
	}
}
