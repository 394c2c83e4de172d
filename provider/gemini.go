package provider

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiProvider implements Replier using Google's generative-ai SDK.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini provider. baseURL overrides the API
// endpoint and is normally empty.
func NewGeminiProvider(baseURL, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithEndpoint(baseURL))
	}

	client, err := genai.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) Reply(ctx context.Context, message string) (string, error) {
	resp, err := p.client.GenerativeModel(p.model).GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", errors.Wrap(err, "Gemini request failed")
	}

	reply := extractText(resp)
	log.Debug().Str("provider", p.Name()).Str("model", p.model).Int("chars", len(reply)).Msg("reply received")
	return reply, nil
}

func (p *GeminiProvider) Name() string  { return string(ProviderTypeGemini) }
func (p *GeminiProvider) Model() string { return p.model }

// Close releases the underlying client connection.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}
	return text.String()
}
