package llm

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/synthgen/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "llm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	mock := NewMockProvider(
		MockResponse{Content: "OUTPUT: a\nREASONING: b", Usage: Usage{InputTokens: 11, OutputTokens: 7}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := WithLogging(mock, s.EventRepo(), logger)

	ctx := WithRunID(WithPurpose(context.Background(), "generate"), "run-42")
	req := Request{Messages: []Message{{Role: RoleSystem, Content: "sys"}, {Role: RoleUser, Content: "prompt"}}, MaxTokens: 8}

	_, err = p.Generate(ctx, req)
	require.NoError(t, err)
	_, err = p.Generate(ctx, req)
	require.Error(t, err)

	events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{RunID: "run-42"})
	require.NoError(t, err)
	require.Len(t, events, 2)

	failed, ok := events[0], events[1]
	assert.True(t, ok.Success)
	assert.Equal(t, ProviderMock, ok.Provider)
	assert.Equal(t, "generate", ok.Purpose)
	assert.Equal(t, 11, ok.InputTokens)
	assert.Equal(t, "OUTPUT: a\nREASONING: b", ok.ResponseBody)
	assert.Contains(t, ok.RequestBody, "[system]\nsys")
	assert.Contains(t, ok.RequestBody, "[user]\nprompt")

	assert.False(t, failed.Success)
	assert.Contains(t, failed.ErrorMessage, "down")

	assert.Contains(t, buf.String(), "llm request failed")
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Content: "x"}), nil, nil)
	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "x", resp.Content)
	assert.Equal(t, "mock", p.ModelID())
}

func TestLoggingProvider_DelegatesAuthenticate(t *testing.T) {
	mock := NewMockProvider()
	mock.AuthErr = &ErrAuthentication{Provider: "mock", Err: errors.New("nope")}
	p := WithLogging(mock, nil, nil)

	var authErr *ErrAuthentication
	assert.True(t, errors.As(p.Authenticate(context.Background()), &authErr))
}

func TestSerializeRequest(t *testing.T) {
	got := serializeRequest(Request{
		Messages:  []Message{{Role: RoleUser, Content: "hello"}},
		MaxTokens: 5,
	})
	assert.True(t, strings.HasPrefix(got, "[user]\nhello\n\n"))
	assert.Contains(t, got, "[max_tokens: 5]")
}
