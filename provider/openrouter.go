package provider

import "github.com/pkg/errors"

const (
	DefaultOpenRouterURL   = "https://openrouter.ai/api/v1"
	DefaultOpenRouterModel = "meta-llama/llama-3.2-90b-instruct"
)

// NewOpenRouterProvider creates a provider for OpenRouter, whose API is
// OpenAI-compatible, so it shares OpenAIProvider with a different base URL.
//
// Parameters:
//   - baseURL: OpenRouter API base URL ("https://openrouter.ai/api/v1")
//   - apiKey: OpenRouter API key (required)
//   - model: Model to use (default: "meta-llama/llama-3.2-90b-instruct")
func NewOpenRouterProvider(baseURL, apiKey, model string) (*OpenAIProvider, error) {
	if baseURL == "" {
		baseURL = DefaultOpenRouterURL
	}
	if apiKey == "" {
		return nil, errors.New("OpenRouter API key is required")
	}
	if model == "" {
		model = DefaultOpenRouterModel
	}

	return newOpenAICompatible(ProviderTypeOpenRouter, baseURL, apiKey, model), nil
}
