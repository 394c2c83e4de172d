package provider

import (
	"context"
	"strings"
)

// EchoProvider answers without any model. It lets the server run offline
// and gives tests a deterministic backend.
type EchoProvider struct{}

func NewEchoProvider() *EchoProvider {
	return &EchoProvider{}
}

func (p *EchoProvider) Reply(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "You said: " + strings.TrimSpace(message), nil
}

func (p *EchoProvider) Name() string  { return string(ProviderTypeEcho) }
func (p *EchoProvider) Model() string { return "echo" }
