// Package provider defines the LLM backends behind "chatbox serve".
//
// Every backend implements Replier: one user message in, one reply out.
// The server does not keep conversation state, so each call is independent
// and providers never see earlier turns.
//
// # Architecture
//
//   - provider.Replier defines the contract (interface)
//   - provider.EchoProvider answers offline and is the default
//   - provider.OllamaProvider talks to a local or remote Ollama server
//   - provider.OpenAIProvider and provider.OpenRouterProvider use the OpenAI SDK
//   - provider.AnthropicProvider uses the Anthropic SDK
//   - provider.GeminiProvider uses Google's generative-ai SDK
//   - provider.NewProvider() factory creates providers from config
//
// # Usage
//
//	p, err := provider.NewProvider(provider.Config{
//	    Type:  provider.ProviderTypeOllama,
//	    Model: "llama3.1",
//	})
//	if err != nil {
//	    // handle error
//	}
//	reply, err := p.Reply(ctx, "Hello")
package provider

import "context"

// Replier produces a reply for a single chat message.
type Replier interface {
	// Reply returns the assistant's answer to message.
	Reply(ctx context.Context, message string) (string, error)

	// Name returns the provider ID ("ollama", "openai", ...).
	Name() string

	// Model returns the model name requests are sent to.
	Model() string
}

// ProviderType identifies the provider implementation.
type ProviderType string

const (
	ProviderTypeEcho       ProviderType = "echo"
	ProviderTypeOllama     ProviderType = "ollama"
	ProviderTypeOpenRouter ProviderType = "openrouter"
	ProviderTypeOpenAI     ProviderType = "openai"
	ProviderTypeAnthropic  ProviderType = "anthropic"
	ProviderTypeGemini     ProviderType = "gemini"
)

// Config holds provider-specific configuration.
type Config struct {
	Type    ProviderType
	BaseURL string
	Model   string
	APIKey  string // For cloud providers (unused for echo and Ollama)
}
