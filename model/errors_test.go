package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ""},
		{"network", NetworkError(errors.New("refused")), KindNetwork},
		{"protocol", ProtocolError(errors.New("bad json")), KindProtocol},
		{"wrapped protocol", errors.Wrap(ProtocolError(nil), "exchange"), KindProtocol},
		{"plain error", errors.New("boom"), KindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestFailureText(t *testing.T) {
	status := &ExchangeError{Kind: KindProtocol, StatusCode: 503}

	assert.Contains(t, FailureText(status), "status 503")
	assert.Contains(t, FailureText(ProtocolError(nil)), "could not read")
	assert.Contains(t, FailureText(NetworkError(nil)), "Could not reach")
	assert.Contains(t, FailureText(errors.New("boom")), "Could not reach")
}

func TestExchangeErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := NetworkError(cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "network error: dial tcp: refused", err.Error())
	assert.Equal(t, "protocol error", ProtocolError(nil).Error())
}

func TestNewFailureMessage(t *testing.T) {
	msg := NewFailureMessage(ProtocolError(nil))

	assert.True(t, msg.Failed)
	assert.Equal(t, SenderBot, msg.Sender)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, FailureText(ProtocolError(nil)), msg.Text)
}

func TestResult(t *testing.T) {
	ok := Result{Reply: ""}
	assert.True(t, ok.OK())
	assert.Equal(t, ErrorKind(""), ok.Kind())

	failed := Result{Err: ProtocolError(nil)}
	assert.False(t, failed.OK())
	assert.Equal(t, KindProtocol, failed.Kind())
}
