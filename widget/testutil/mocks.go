package testutil

import (
	"context"
	"sync"

	"chatbox/model"
)

// MemorySurface implements widget.Surface over a plain slice for testing.
type MemorySurface struct {
	Text     string
	Messages []model.Message

	// Scrolls counts Append calls; every append scrolls to the newest entry.
	Scrolls int
}

func (s *MemorySurface) Input() string {
	return s.Text
}

func (s *MemorySurface) ClearInput() {
	s.Text = ""
}

func (s *MemorySurface) Append(msg model.Message) {
	s.Messages = append(s.Messages, msg)
	s.Scrolls++
}

func (s *MemorySurface) Remove(id string) bool {
	for i, msg := range s.Messages {
		if msg.ID == id {
			s.Messages = append(s.Messages[:i], s.Messages[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the display list.
func (s *MemorySurface) Snapshot() []model.Message {
	out := make([]model.Message, len(s.Messages))
	copy(out, s.Messages)
	return out
}

// MockExchanger implements model.Exchanger and records every call.
type MockExchanger struct {
	// Configurable response
	ExchangeFunc func(ctx context.Context, message string) (string, error)

	// OnCall runs before ExchangeFunc, e.g. to inspect a surface at call time.
	OnCall func(message string)

	mu    sync.Mutex
	calls []string
}

// NewMockExchanger returns an exchanger that always answers reply.
func NewMockExchanger(reply string) *MockExchanger {
	return &MockExchanger{
		ExchangeFunc: func(context.Context, string) (string, error) {
			return reply, nil
		},
	}
}

// NewFailingExchanger returns an exchanger that always fails with err.
func NewFailingExchanger(err error) *MockExchanger {
	return &MockExchanger{
		ExchangeFunc: func(context.Context, string) (string, error) {
			return "", err
		},
	}
}

func (m *MockExchanger) Exchange(ctx context.Context, message string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, message)
	m.mu.Unlock()

	if m.OnCall != nil {
		m.OnCall(message)
	}
	return m.ExchangeFunc(ctx, message)
}

// Calls returns the messages sent so far.
func (m *MockExchanger) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}
