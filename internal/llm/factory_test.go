package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestConnect_Mock(t *testing.T) {
	p, err := Connect(context.Background(), Config{Provider: ProviderMock}, "m", "tok", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "m" {
		t.Errorf("model = %q, want m", p.ModelID())
	}
	if _, ok := p.(*LoggingProvider); !ok {
		t.Errorf("expected logging wrapper without limits, got %T", p)
	}
}

func TestConnect_WrapsLimits(t *testing.T) {
	p, err := Connect(context.Background(), Config{Provider: ProviderMock, Timeout: time.Second}, "m", "tok", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*LimitedProvider); !ok {
		t.Errorf("expected limits wrapper outermost, got %T", p)
	}
}

func TestConnect_MissingToken(t *testing.T) {
	_, err := Connect(context.Background(), DefaultConfig(), "m", "", nil, nil)
	if !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestConnect_MissingTokenMock(t *testing.T) {
	_, err := Connect(context.Background(), Config{Provider: ProviderMock}, "m", "", nil, nil)
	if !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken for mock backend, got %v", err)
	}
}

func TestConnect_InvalidConfig(t *testing.T) {
	if _, err := Connect(context.Background(), Config{Provider: "nope"}, "m", "tok", nil, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestConnect_RejectedToken(t *testing.T) {
	hub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials in Authorization header"}`))
	}))
	t.Cleanup(hub.Close)

	cfg := DefaultConfig()
	cfg.HubURL = hub.URL
	_, err := Connect(context.Background(), cfg, "meta-llama/Llama-3.2-3B-Instruct", "hf_bad", nil, nil)

	var authErr *ErrAuthentication
	if !errors.As(err, &authErr) {
		t.Fatalf("expected ErrAuthentication, got %T (%v)", err, err)
	}
}
