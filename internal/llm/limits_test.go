package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

type deadlineProvider struct {
	MockProvider
	sawDeadline bool
}

func (d *deadlineProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	_, d.sawDeadline = ctx.Deadline()
	return &Response{Content: "ok"}, nil
}

func TestWithLimits_NoLimitsReturnsInner(t *testing.T) {
	mock := NewMockProvider()
	if got := WithLimits(mock, 0, 0); got != Provider(mock) {
		t.Fatalf("expected inner provider unchanged, got %T", got)
	}
}

func TestWithLimits_AppliesTimeout(t *testing.T) {
	inner := &deadlineProvider{}
	p := WithLimits(inner, 0, time.Minute)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inner.sawDeadline {
		t.Fatal("expected a deadline on the inner call")
	}
}

func TestWithLimits_RateLimitHonoursCancellation(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "a"}, MockResponse{Content: "b"})
	p := WithLimits(mock, 0.001, 0)

	// The first call consumes the only burst token.
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("first call: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := p.Generate(ctx, Request{})
	if err == nil {
		t.Fatal("expected the limiter to give up")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 inner call, got %d", mock.CallCount())
	}
	if errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected cancellation error: %v", err)
	}
}
