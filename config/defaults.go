package config

import (
	"chatbox/client"
	"chatbox/widget"
)

const (
	DefaultTitle      = "Chat"
	DefaultServerAddr = "127.0.0.1:8000"
	DefaultProvider   = "echo"
)

func DefaultSettings() *Settings {
	return &Settings{
		Endpoint: EndpointConfig{
			URL:     client.DefaultEndpoint,
			Timeout: Duration{client.DefaultTimeout},
		},
		Widget: WidgetConfig{
			Title:       DefaultTitle,
			Placeholder: widget.DefaultPlaceholder,
		},
		Server: ServerConfig{
			Addr:     DefaultServerAddr,
			Provider: DefaultProvider,
		},
	}
}

func GenerateSettingsTemplate() string {
	return `# chatbox settings
# Location: ~/.config/chatbox/settings.toml (or $CHATBOX_CONFIG_DIR/settings.toml)
# This file uses TOML format: https://toml.io

[endpoint]
# URL that receives {"message": "..."} and answers {"reply": "..."}
# Override with CHATBOX_ENDPOINT or --endpoint
url = "` + client.DefaultEndpoint + `"

# How long to wait for a reply before giving up ("0s" waits forever)
timeout = "` + client.DefaultTimeout.String() + `"

[widget]
# Title shown in the header line
title = "` + DefaultTitle + `"

# Text of the bot message shown while a reply is pending
placeholder = "` + widget.DefaultPlaceholder + `"

[server]
# Settings for "chatbox serve", the reference backend
addr = "` + DefaultServerAddr + `"

# One of: echo, ollama, openai, openrouter, anthropic, gemini
# API keys are read from OPENAI_API_KEY, OPENROUTER_API_KEY,
# ANTHROPIC_API_KEY or GEMINI_API_KEY (a .env file is honoured)
provider = "` + DefaultProvider + `"

# Model name; empty selects the provider default
model = ""

# Optional base URL override (e.g. a remote Ollama host)
# base_url = "http://localhost:11434"
`
}
