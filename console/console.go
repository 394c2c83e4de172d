// Package console drives the chat widget over plain lines of text, for
// when stdin is a pipe or file rather than a terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"chatbox/model"
	"chatbox/widget"
)

const (
	userPrefix = "you> "
	botPrefix  = "bot> "

	maxLineBytes = 1 << 20
)

// Surface prints each appended message as one prefixed line. Output is
// append-only, so Remove drops the message from the list without
// erasing what was already printed.
type Surface struct {
	out      io.Writer
	input    string
	messages []model.Message
}

func NewSurface(out io.Writer) *Surface {
	return &Surface{out: out}
}

// SetInput replaces the pending input line.
func (s *Surface) SetInput(text string) {
	s.input = text
}

func (s *Surface) Input() string {
	return s.input
}

func (s *Surface) ClearInput() {
	s.input = ""
}

func (s *Surface) Append(msg model.Message) {
	s.messages = append(s.messages, msg)
	fmt.Fprintln(s.out, formatLine(msg))
}

func (s *Surface) Remove(id string) bool {
	for i, msg := range s.messages {
		if msg.ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return true
		}
	}
	return false
}

// Messages returns the current display list.
func (s *Surface) Messages() []model.Message {
	return append([]model.Message(nil), s.messages...)
}

func formatLine(msg model.Message) string {
	prefix := botPrefix
	if msg.Sender == model.SenderUser {
		prefix = userPrefix
	}
	text := msg.Text
	if msg.Failed {
		text = "[error] " + text
	}
	// Continuation lines are indented under the prefix.
	indent := "\n" + strings.Repeat(" ", len(prefix))
	return prefix + strings.ReplaceAll(text, "\n", indent)
}

type scanResult struct {
	line string
	err  error
	eof  bool
}

// readLines scans in on its own goroutine so that Run can stop on ctx while
// a read is blocked. The goroutine exits once done is closed and its
// pending read returns.
func readLines(in io.Reader, done <-chan struct{}) <-chan scanResult {
	lines := make(chan scanResult)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

		for scanner.Scan() {
			select {
			case lines <- scanResult{line: scanner.Text()}:
			case <-done:
				return
			}
		}

		select {
		case lines <- scanResult{err: scanner.Err(), eof: true}:
		case <-done:
		}
	}()
	return lines
}

// Run submits each line read from in as one message and prints the
// conversation to out. Blank lines are skipped. It returns nil at end of
// input and ctx.Err() when ctx is cancelled, even while waiting for a line.
func Run(ctx context.Context, in io.Reader, out io.Writer, exchanger model.Exchanger, opts widget.Options) error {
	surface := NewSurface(out)
	ctrl := widget.New(surface, exchanger, opts)

	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	for {
		var next scanResult
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next = <-lines:
		}

		if next.eof {
			if next.err != nil {
				return errors.Wrap(next.err, "failed to read input")
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		surface.SetInput(next.line)
		res, err := ctrl.Submit(ctx)
		if errors.Is(err, model.ErrEmptyInput) {
			continue
		}
		if err != nil {
			return err
		}
		if !res.OK() {
			log.Debug().Str("kind", string(res.Kind())).Err(res.Err).Msg("line submission failed")
		}
	}
}
