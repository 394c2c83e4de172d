package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatbox/provider/testutil"
)

// Compile-time interface checks
var (
	_ Replier = (*EchoProvider)(nil)
	_ Replier = (*OllamaProvider)(nil)
	_ Replier = (*OpenAIProvider)(nil)
	_ Replier = (*AnthropicProvider)(nil)
	_ Replier = (*GeminiProvider)(nil)
	_ Replier = (*testutil.MockProvider)(nil)
)

func TestEchoProvider(t *testing.T) {
	p := NewEchoProvider()

	reply, err := p.Reply(context.Background(), "  Hello  ")
	require.NoError(t, err)
	assert.Equal(t, "You said: Hello", reply)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Reply(ctx, "Hello")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOllamaProviderReply(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/x-ndjson")
		io.WriteString(w, `{"model":"llama3.1","message":{"role":"assistant","content":"Hi "},"done":false}`+"\n")
		io.WriteString(w, `{"model":"llama3.1","message":{"role":"assistant","content":"there!"},"done":true}`+"\n")
	}))
	defer srv.Close()

	p, err := NewOllamaProvider(srv.URL, "llama3.1")
	require.NoError(t, err)

	reply, err := p.Reply(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there!", reply)

	assert.Equal(t, "llama3.1", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "Hello", got.Messages[0].Content)
}

func TestOllamaProviderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p, err := NewOllamaProvider(url, "")
	require.NoError(t, err)

	_, err = p.Reply(context.Background(), "Hello")
	assert.Error(t, err)
}

func TestOpenAIProviderReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-test", body["model"])

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-test",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "Hi there!"}
			}]
		}`)
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider(srv.URL, "test-key", "gpt-test")
	require.NoError(t, err)

	reply, err := p.Reply(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there!", reply)
}

func TestAnthropicProviderReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/messages"), r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [{"type": "text", "text": "Hi "}, {"type": "text", "text": "there!"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 1, "output_tokens": 2}
		}`)
	}))
	defer srv.Close()

	p, err := NewAnthropicProvider(srv.URL, "test-key", "claude-test")
	require.NoError(t, err)

	reply, err := p.Reply(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there!", reply)
}

func TestExtractText(t *testing.T) {
	assert.Equal(t, "", extractText(nil))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Hi "), genai.Text("there!")}}},
			{Content: nil},
		},
	}
	assert.Equal(t, "Hi there!", extractText(resp))
}

func TestMockProviderRecordsMessages(t *testing.T) {
	p := testutil.NewMockProvider("ok")

	_, _ = p.Reply(context.Background(), "one")
	_, _ = p.Reply(context.Background(), "two")

	assert.Equal(t, []string{"one", "two"}, p.Messages())
}
