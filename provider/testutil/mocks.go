package testutil

import (
	"context"
	"sync"
)

// MockProvider implements provider.Replier for testing
type MockProvider struct {
	// Configurable response
	ReplyFunc func(ctx context.Context, message string) (string, error)

	mu       sync.Mutex
	messages []string
	model    string
}

// NewMockProvider creates a mock provider that always answers reply
func NewMockProvider(reply string) *MockProvider {
	return &MockProvider{
		ReplyFunc: func(ctx context.Context, message string) (string, error) {
			return reply, nil
		},
		model: "mock-model",
	}
}

// NewFailingProvider creates a mock provider that always fails with err
func NewFailingProvider(err error) *MockProvider {
	return &MockProvider{
		ReplyFunc: func(ctx context.Context, message string) (string, error) {
			return "", err
		},
		model: "mock-model",
	}
}

func (m *MockProvider) Reply(ctx context.Context, message string) (string, error) {
	m.mu.Lock()
	m.messages = append(m.messages, message)
	m.mu.Unlock()
	return m.ReplyFunc(ctx, message)
}

func (m *MockProvider) Name() string  { return "mock" }
func (m *MockProvider) Model() string { return m.model }

// Messages returns every message passed to Reply, in call order
func (m *MockProvider) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}
