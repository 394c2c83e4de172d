package provider

import (
	"context"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	DefaultOpenAIURL   = "https://api.openai.com/v1"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// OpenAIProvider implements Replier using OpenAI's official Go SDK.
type OpenAIProvider struct {
	client  openai.Client
	name    ProviderType
	model   string
	baseURL string
}

// NewOpenAIProvider creates a new OpenAI provider instance.
//
// Parameters:
//   - baseURL: OpenAI API base URL (default: "https://api.openai.com/v1")
//   - apiKey: OpenAI API key (required)
//   - model: Model to use (default: "gpt-4o-mini")
//
// Returns an error if the API key is missing.
func NewOpenAIProvider(baseURL, apiKey, model string) (*OpenAIProvider, error) {
	if baseURL == "" {
		baseURL = DefaultOpenAIURL
	}
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	if model == "" {
		model = DefaultOpenAIModel // Default to affordable model
	}

	return newOpenAICompatible(ProviderTypeOpenAI, baseURL, apiKey, model), nil
}

func newOpenAICompatible(name ProviderType, baseURL, apiKey, model string) *OpenAIProvider {
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &OpenAIProvider{
		client:  client,
		name:    name,
		model:   model,
		baseURL: baseURL,
	}
}

func (p *OpenAIProvider) Reply(ctx context.Context, message string) (string, error) {
	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(message),
		},
		Model: openai.ChatModel(p.model),
	})
	if err != nil {
		return "", errors.Wrapf(err, "%s completion failed", p.name)
	}
	if len(completion.Choices) == 0 {
		return "", errors.Errorf("%s returned no choices", p.name)
	}

	reply := completion.Choices[0].Message.Content
	log.Debug().Str("provider", p.Name()).Str("model", p.model).Int("chars", len(reply)).Msg("reply received")
	return reply, nil
}

func (p *OpenAIProvider) Name() string  { return string(p.name) }
func (p *OpenAIProvider) Model() string { return p.model }
