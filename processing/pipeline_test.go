package processing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Biswa2Das/marketing-storyline/config"
	"github.com/Biswa2Das/marketing-storyline/llm"
)

// stubClient scripts completion responses per model and counts calls.
type stubClient struct {
	responses map[string]string
	errors    map[string]error
	calls     int
	lastReq   *llm.Request
}

func (s *stubClient) Name() string                   { return "stub" }
func (s *stubClient) Ping(_ context.Context) error   { return nil }
func (s *stubClient) Complete(_ context.Context, req *llm.Request) (*llm.Completion, error) {
	s.calls++
	s.lastReq = req
	if err, ok := s.errors[req.Model]; ok {
		return nil, err
	}
	content, ok := s.responses[req.Model]
	if !ok {
		return nil, &llm.Error{Kind: llm.KindServer, Message: "no scripted response for " + req.Model}
	}
	return &llm.Completion{Content: content, Model: req.Model}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Provider:       "mock",
		Model:          "primary",
		Temperature:    0.7,
		MaxTokens:      1000,
		TopP:           1.0,
		RequestTimeout: 30 * time.Second,
	}
}

func TestCompleteWithFallbackAdvancesOnServerError(t *testing.T) {
	cfg := testConfig()
	cfg.FallbackModels = []string{"backup"}

	client := &stubClient{
		responses: map[string]string{"backup": "ok"},
		errors:    map[string]error{"primary": &llm.Error{Kind: llm.KindServer, Message: "boom"}},
	}

	req := &llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: "s"},
			{Role: "user", Content: "u"},
		},
		Temperature: 0.7,
		MaxTokens:   100,
	}

	completion, err := completeWithFallback(context.Background(), client, cfg, req)
	require.NoError(t, err)
	assert.Equal(t, "ok", completion.Content)
	assert.Equal(t, 2, client.calls)
}

func TestCompleteWithFallbackStopsOnClientError(t *testing.T) {
	cfg := testConfig()
	cfg.FallbackModels = []string{"backup"}

	client := &stubClient{
		responses: map[string]string{"backup": "ok"},
		errors:    map[string]error{"primary": &llm.Error{Kind: llm.KindAuth, Message: "bad key"}},
	}

	req := &llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: "s"},
			{Role: "user", Content: "u"},
		},
		Temperature: 0.7,
		MaxTokens:   100,
	}

	_, err := completeWithFallback(context.Background(), client, cfg, req)
	require.Error(t, err)
	assert.Equal(t, llm.KindAuth, llm.KindOf(err))
	assert.Equal(t, 1, client.calls, "auth errors must not trigger fallback")
}

func TestCompleteWithFallbackExhaustsCandidates(t *testing.T) {
	cfg := testConfig()
	cfg.FallbackModels = []string{"backup"}

	client := &stubClient{
		errors: map[string]error{
			"primary": &llm.Error{Kind: llm.KindServer, Message: "down"},
			"backup":  &llm.Error{Kind: llm.KindUnreachable, Message: "also down"},
		},
	}

	req := &llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: "s"},
			{Role: "user", Content: "u"},
		},
		Temperature: 0.7,
		MaxTokens:   100,
	}

	_, err := completeWithFallback(context.Background(), client, cfg, req)
	require.Error(t, err)
	assert.Equal(t, llm.KindUnreachable, llm.KindOf(err))
	assert.Equal(t, 2, client.calls)
}
