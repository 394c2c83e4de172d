package provider

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const DefaultAnthropicURL = "https://api.anthropic.com"

// AnthropicProvider implements Replier using Anthropic's official Go SDK.
type AnthropicProvider struct {
	client  *anthropic.Client
	model   anthropic.Model
	baseURL string
}

// NewAnthropicProvider creates a new Anthropic provider instance.
//
// Parameters:
//   - baseURL: Anthropic API base URL (default: "https://api.anthropic.com")
//   - apiKey: Anthropic API key (required)
//   - model: Model to use (default: Claude Sonnet 4.5)
//
// Returns an error if the API key is missing.
func NewAnthropicProvider(baseURL, apiKey, model string) (*AnthropicProvider, error) {
	if baseURL == "" {
		baseURL = DefaultAnthropicURL
	}
	if apiKey == "" {
		return nil, errors.New("Anthropic API key is required")
	}

	anthropicModel := anthropic.ModelClaudeSonnet4_5_20250929
	if model != "" {
		anthropicModel = anthropic.Model(model)
	}

	client := anthropic.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &AnthropicProvider{
		client:  &client, // Convert value to pointer
		model:   anthropicModel,
		baseURL: baseURL,
	}, nil
}

func (p *AnthropicProvider) Reply(ctx context.Context, message string) (string, error) {
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: 4096, // Required by Anthropic API
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(message)),
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "Anthropic request failed")
	}

	var reply strings.Builder
	for _, block := range msg.Content {
		switch variant := block.AsAny().(type) {
		case anthropic.TextBlock:
			reply.WriteString(variant.Text)
		}
	}

	log.Debug().Str("provider", p.Name()).Str("model", p.Model()).Int("chars", reply.Len()).Msg("reply received")
	return reply.String(), nil
}

func (p *AnthropicProvider) Name() string  { return string(ProviderTypeAnthropic) }
func (p *AnthropicProvider) Model() string { return string(p.model) }
