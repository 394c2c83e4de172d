// Package widget implements the chat widget controller.
//
// The controller appends messages to an injected Surface, captures input on
// explicit submit actions, and runs one request/response exchange per submit
// through a model.Exchanger.
//
// # Submission lifecycle
//
// A submission moves Idle -> Sent -> Resolved. Event loops that must not
// block split Submit into three calls:
//
//	sub, err := ctrl.Begin()          // UI goroutine: user message, clear, placeholder
//	res := sub.Exchange(ctx)          // any goroutine: the network call
//	ctrl.Resolve(sub.ID, res)         // UI goroutine: placeholder -> reply or failure
//
// Begin and Resolve mutate the surface and must run on the goroutine that owns
// it. Exchange touches no shared state.
//
// # Overlapping submissions
//
// A second Begin while an earlier submission is in flight is allowed. Each
// submission owns its placeholder, and its reply is appended at the end of
// the display list when it resolves, so replies show in arrival order.
package widget

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"chatbox/model"
)

// DefaultPlaceholder is the text of the pending placeholder message.
const DefaultPlaceholder = "Typing..."

// Options configures a Controller.
type Options struct {
	Placeholder string
}

// Controller is the chat widget controller. It is not safe for concurrent
// use; see the package documentation for which calls may leave the UI
// goroutine.
type Controller struct {
	surface     Surface
	exchanger   model.Exchanger
	placeholder string
	pending     map[string]*Submission
}

// Submission is one in-flight submit.
type Submission struct {
	ID            string
	Text          string // Trimmed input that was sent
	PlaceholderID string

	exchanger model.Exchanger
}

// New creates a controller bound to surface and exchanger.
func New(surface Surface, exchanger model.Exchanger, opts Options) *Controller {
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	return &Controller{
		surface:     surface,
		exchanger:   exchanger,
		placeholder: placeholder,
		pending:     make(map[string]*Submission),
	}
}

// AppendMessage appends a message to the display list and scrolls to it.
func (c *Controller) AppendMessage(text string, sender model.Sender) model.Message {
	msg := model.NewMessage(text, sender)
	c.surface.Append(msg)
	return msg
}

// Begin runs the synchronous half of a submit: it reads and trims the input,
// appends the user message, clears the input and appends the placeholder.
// It returns model.ErrEmptyInput, with no side effects, when the input trims
// to nothing.
func (c *Controller) Begin() (*Submission, error) {
	text := strings.TrimSpace(c.surface.Input())
	if text == "" {
		return nil, model.ErrEmptyInput
	}

	c.AppendMessage(text, model.SenderUser)
	c.surface.ClearInput()
	placeholder := c.AppendMessage(c.placeholder, model.SenderBot)

	sub := &Submission{
		ID:            uuid.NewString(),
		Text:          text,
		PlaceholderID: placeholder.ID,
		exchanger:     c.exchanger,
	}
	c.pending[sub.ID] = sub

	log.Debug().
		Str("submission", sub.ID).
		Int("pending", len(c.pending)).
		Int("length", len(text)).
		Msg("submission started")

	return sub, nil
}

// Exchange performs the network call for the submission. It never touches the
// surface and may run on any goroutine.
func (s *Submission) Exchange(ctx context.Context) model.Result {
	reply, err := s.exchanger.Exchange(ctx, s.Text)
	if err != nil {
		var exErr *model.ExchangeError
		if !errors.As(err, &exErr) {
			err = model.NetworkError(err)
		}
		return model.Result{Err: err}
	}
	return model.Result{Reply: reply}
}

// Resolve completes the submission with the given id: the placeholder is
// removed and either the reply or a failure message is appended. It returns
// the appended message and false if no such submission is pending.
func (c *Controller) Resolve(id string, res model.Result) (model.Message, bool) {
	sub, ok := c.pending[id]
	if !ok {
		log.Warn().Str("submission", id).Msg("resolve for unknown submission")
		return model.Message{}, false
	}
	delete(c.pending, id)

	c.surface.Remove(sub.PlaceholderID)

	if res.OK() {
		log.Debug().Str("submission", id).Int("length", len(res.Reply)).Msg("submission resolved")
		return c.AppendMessage(res.Reply, model.SenderBot), true
	}

	log.Warn().Str("submission", id).Str("kind", string(res.Kind())).Err(res.Err).Msg("submission failed")
	msg := model.NewFailureMessage(res.Err)
	c.surface.Append(msg)
	return msg, true
}

// Submit runs Begin, Exchange and Resolve in sequence. It blocks until the
// exchange finishes. The returned error is model.ErrEmptyInput or nil;
// exchange failures are reported through the Result.
func (c *Controller) Submit(ctx context.Context) (model.Result, error) {
	sub, err := c.Begin()
	if err != nil {
		return model.Result{}, err
	}

	res := sub.Exchange(ctx)
	c.Resolve(sub.ID, res)
	return res, nil
}

// Pending returns the number of submissions that have begun but not resolved.
func (c *Controller) Pending() int {
	return len(c.pending)
}

// IsPlaceholder reports whether id belongs to the placeholder of a pending
// submission.
func (c *Controller) IsPlaceholder(id string) bool {
	for _, sub := range c.pending {
		if sub.PlaceholderID == id {
			return true
		}
	}
	return false
}
