package provider

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	DefaultOllamaURL   = "http://localhost:11434"
	DefaultOllamaModel = "llama3.1:latest"
)

// OllamaProvider sends each message to an Ollama server's chat API and
// collects the streamed chunks into one reply.
type OllamaProvider struct {
	client  *api.Client
	model   string
	baseURL string
}

// NewOllamaProvider creates a new Ollama provider instance.
//
// Parameters:
//   - baseURL: The Ollama server URL. If empty, defaults to "http://localhost:11434".
//   - model: The model name to use. If empty, defaults to "llama3.1:latest".
//
// Returns an error if the baseURL is invalid.
func NewOllamaProvider(baseURL, model string) (*OllamaProvider, error) {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		if err == nil {
			err = errors.Errorf("missing scheme or host in %q", baseURL)
		}
		return nil, errors.Wrap(err, "invalid Ollama URL")
	}

	return &OllamaProvider{
		client:  api.NewClient(parsedURL, http.DefaultClient),
		model:   model,
		baseURL: baseURL,
	}, nil
}

func (p *OllamaProvider) Reply(ctx context.Context, message string) (string, error) {
	req := &api.ChatRequest{
		Model: p.model,
		Messages: []api.Message{
			{Role: "user", Content: message},
		},
		Stream: func(b bool) *bool { return &b }(true),
	}

	var reply strings.Builder
	respFunc := func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	}

	if err := p.client.Chat(ctx, req, respFunc); err != nil {
		return "", errors.Wrap(err, "Ollama chat failed")
	}

	log.Debug().Str("provider", p.Name()).Str("model", p.model).Int("chars", reply.Len()).Msg("reply received")
	return reply.String(), nil
}

func (p *OllamaProvider) Name() string  { return string(ProviderTypeOllama) }
func (p *OllamaProvider) Model() string { return p.model }

// Ping checks that the server answers by listing its models.
func (p *OllamaProvider) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := p.client.List(ctx)
	return err
}
