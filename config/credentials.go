package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// apiKeyEnv maps provider IDs to the variables holding their API keys
var apiKeyEnv = map[string]string{
	"openai":     "OPENAI_API_KEY",
	"openrouter": "OPENROUTER_API_KEY",
	"anthropic":  "ANTHROPIC_API_KEY",
	"gemini":     "GEMINI_API_KEY",
}

// LoadDotEnv reads .env files into the environment without overriding
// variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if FileExists(f) {
			_ = godotenv.Load(f)
		}
	}
}

// APIKeyEnv returns the environment variable consulted for providerID.
func APIKeyEnv(providerID string) string {
	return apiKeyEnv[strings.ToLower(providerID)]
}

// APIKey returns the API key for providerID, or "" when the provider needs
// none or the variable is unset.
func APIKey(providerID string) string {
	name := APIKeyEnv(providerID)
	if name == "" {
		return ""
	}
	key := strings.TrimSpace(os.Getenv(name))
	if key == "" && strings.EqualFold(providerID, "gemini") {
		key = strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
	}
	return key
}
