package provider

import (
	"strings"

	"github.com/pkg/errors"
)

// NewProvider creates a provider based on configuration.
//
// Returns an error if the provider type is unknown or the provider-specific
// constructor fails (missing API key, invalid URL).
//
// Example:
//
//	p, err := provider.NewProvider(provider.Config{
//	    Type:   provider.ProviderTypeGemini,
//	    APIKey: os.Getenv("GEMINI_API_KEY"),
//	})
func NewProvider(cfg Config) (Replier, error) {
	switch cfg.Type {
	case ProviderTypeEcho:
		return NewEchoProvider(), nil
	case ProviderTypeOllama:
		return asReplier[*OllamaProvider](NewOllamaProvider(cfg.BaseURL, cfg.Model))
	case ProviderTypeOpenRouter:
		return asReplier[*OpenAIProvider](NewOpenRouterProvider(cfg.BaseURL, cfg.APIKey, cfg.Model))
	case ProviderTypeOpenAI:
		return asReplier[*OpenAIProvider](NewOpenAIProvider(cfg.BaseURL, cfg.APIKey, cfg.Model))
	case ProviderTypeAnthropic:
		return asReplier[*AnthropicProvider](NewAnthropicProvider(cfg.BaseURL, cfg.APIKey, cfg.Model))
	case ProviderTypeGemini:
		return asReplier[*GeminiProvider](NewGeminiProvider(cfg.BaseURL, cfg.APIKey, cfg.Model))
	default:
		return nil, errors.Errorf("unknown provider type: %s", cfg.Type)
	}
}

// asReplier keeps a failed constructor's typed nil pointer out of the
// returned interface.
func asReplier[T Replier](p T, err error) (Replier, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}

// MapProviderIDToType converts a user-facing provider ID (settings.toml,
// --provider) to its ProviderType. IDs are case-insensitive and "google" is
// accepted for Gemini. For unknown IDs, returns the ID cast as ProviderType
// (the factory will error).
func MapProviderIDToType(id string) ProviderType {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "", "echo":
		return ProviderTypeEcho
	case "ollama":
		return ProviderTypeOllama
	case "openrouter":
		return ProviderTypeOpenRouter
	case "openai":
		return ProviderTypeOpenAI
	case "anthropic":
		return ProviderTypeAnthropic
	case "gemini", "google":
		return ProviderTypeGemini
	default:
		return ProviderType(id)
	}
}
