package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatbox/model"
	"chatbox/widget"
	"chatbox/widget/testutil"
)

func TestRunPrintsConversation(t *testing.T) {
	ex := testutil.NewMockExchanger("Hi there!")
	var out bytes.Buffer

	err := Run(context.Background(), strings.NewReader("Hello\n\n   \nBye\n"), &out, ex, widget.Options{})
	require.NoError(t, err)

	want := strings.Join([]string{
		"you> Hello",
		"bot> Typing...",
		"bot> Hi there!",
		"you> Bye",
		"bot> Typing...",
		"bot> Hi there!",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
	assert.Equal(t, []string{"Hello", "Bye"}, ex.Calls())
}

func TestRunReportsFailureAndContinues(t *testing.T) {
	calls := 0
	ex := model.ExchangerFunc(func(ctx context.Context, message string) (string, error) {
		calls++
		if calls == 1 {
			return "", model.NetworkError(errors.New("connection refused"))
		}
		return "ok", nil
	})
	var out bytes.Buffer

	err := Run(context.Background(), strings.NewReader("one\ntwo\n"), &out, ex, widget.Options{Placeholder: "..."})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "bot> [error] "+model.FailureText(model.NetworkError(nil)), lines[2])
	assert.Equal(t, "bot> ok", lines[5])
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, strings.NewReader("Hello\n"), &out, testutil.NewMockExchanger("x"), widget.Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestSurfaceRemove(t *testing.T) {
	var out bytes.Buffer
	s := NewSurface(&out)

	msg := model.NewMessage("Typing...", model.SenderBot)
	s.Append(msg)
	require.Len(t, s.Messages(), 1)

	assert.True(t, s.Remove(msg.ID))
	assert.False(t, s.Remove(msg.ID))
	assert.Empty(t, s.Messages())
	// Printed output is not rewritten.
	assert.Equal(t, "bot> Typing...\n", out.String())
}

func TestFormatLineIndentsContinuation(t *testing.T) {
	msg := model.NewMessage("line one\nline two", model.SenderBot)
	assert.Equal(t, "bot> line one\n     line two", formatLine(msg))
}

func TestRunStopsOnCancelWhileWaitingForInput(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- Run(ctx, in, io.Discard, testutil.NewMockExchanger("x"), widget.Options{})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
}

func TestRunReportsReadError(t *testing.T) {
	in, w := io.Pipe()
	require.NoError(t, w.CloseWithError(errors.New("tty gone")))

	err := Run(context.Background(), in, io.Discard, testutil.NewMockExchanger("x"), widget.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}
