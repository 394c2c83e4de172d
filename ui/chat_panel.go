package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/mattn/go-runewidth"

	"chatbox/model"
)

const (
	sendButtonLabel = "[ Send ]"
	emptyListText   = "No messages yet. Start chatting!"
)

// chatPanel owns the display list, the input line and the viewport. It is
// the widget.Surface of the terminal UI. AppView holds it by pointer so the
// controller and every copy of the bubbletea model share one display.
type chatPanel struct {
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	messages []model.Message
	rendered map[string]string // message ID -> rendered body, cached per width

	width int

	// isPlaceholder is wired to the controller so pending placeholders
	// render with the spinner.
	isPlaceholder func(id string) bool
}

func newChatPanel(inputPlaceholder string) *chatPanel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = inputPlaceholder
	ti.CharLimit = 0
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = AssistantStyle

	return &chatPanel{
		viewport:      viewport.New(0, 0),
		input:         ti,
		spinner:       sp,
		rendered:      make(map[string]string),
		isPlaceholder: func(string) bool { return false },
	}
}

func (p *chatPanel) Input() string {
	return p.input.Value()
}

func (p *chatPanel) ClearInput() {
	p.input.Reset()
}

func (p *chatPanel) Append(msg model.Message) {
	p.messages = append(p.messages, msg)
	p.refresh(true)
}

func (p *chatPanel) Remove(id string) bool {
	for i, msg := range p.messages {
		if msg.ID == id {
			p.messages = append(p.messages[:i], p.messages[i+1:]...)
			delete(p.rendered, id)
			p.refresh(false)
			return true
		}
	}
	return false
}

// Messages returns a copy of the display list.
func (p *chatPanel) Messages() []model.Message {
	return append([]model.Message(nil), p.messages...)
}

// lastReply returns the newest bot message that is a real reply.
func (p *chatPanel) lastReply() (model.Message, bool) {
	for i := len(p.messages) - 1; i >= 0; i-- {
		msg := p.messages[i]
		if msg.Sender == model.SenderBot && !msg.Failed && !p.isPlaceholder(msg.ID) {
			return msg, true
		}
	}
	return model.Message{}, false
}

func sendButtonWidth() int {
	return runewidth.StringWidth(sendButtonLabel)
}

// setSize lays out the panel for a width x height area: the viewport on top
// and one input row with the send button at its right edge.
func (p *chatPanel) setSize(width, viewportHeight int) {
	if width != p.width {
		p.rendered = make(map[string]string)
	}
	p.width = width
	p.viewport.Width = width
	p.viewport.Height = max(viewportHeight, 1)

	// One space between the input and the button.
	inputWidth := width - sendButtonWidth() - 1 - runewidth.StringWidth(p.input.Prompt)
	p.input.Width = max(inputWidth, 1)

	p.refresh(true)
}

// refresh re-renders the display list into the viewport.
func (p *chatPanel) refresh(gotoBottom bool) {
	if len(p.messages) == 0 {
		p.viewport.SetContent(DimStyle.Render(emptyListText))
		return
	}

	var content strings.Builder
	for _, msg := range p.messages {
		content.WriteString(p.renderMessage(msg))
	}

	p.viewport.SetContent(content.String())
	if gotoBottom {
		p.viewport.GotoBottom()
	}
}

func (p *chatPanel) renderMessage(msg model.Message) string {
	timestamp := DimStyle.Render(msg.Timestamp.Format("[15:04]"))

	if msg.Sender == model.SenderUser {
		return formatUserMessage(timestamp, UserStyle.Render("You"), msg.Text)
	}

	role := AssistantStyle.Render("Bot")
	var body string
	switch {
	case p.isPlaceholder(msg.ID):
		// Not cached: the spinner frame changes on every tick.
		body = fmt.Sprintf("%s %s", p.spinner.View(), DimStyle.Render(msg.Text))
	case msg.Failed:
		body = FailedStyle.Render(msg.Text)
	default:
		cached, ok := p.rendered[msg.ID]
		if !ok {
			cached = renderMarkdown(msg.Text, p.width)
			p.rendered[msg.ID] = cached
		}
		body = cached
	}

	return fmt.Sprintf("%s %s\n%s\n\n", timestamp, role, strings.TrimRight(body, "\n"))
}

// inputRow renders the input field followed by the send button.
func (p *chatPanel) inputRow(busy bool) string {
	button := SendButtonStyle.Render(sendButtonLabel)
	if busy {
		button = SendButtonBusyStyle.Render(sendButtonLabel)
	}

	field := p.input.View()
	pad := p.width - runewidth.StringWidth(stripANSI(field)) - sendButtonWidth()
	if pad < 1 {
		pad = 1
	}
	return field + strings.Repeat(" ", pad) + button
}

// sendButtonHit reports whether column x of the input row falls on the
// send button.
func (p *chatPanel) sendButtonHit(x int) bool {
	start := p.width - sendButtonWidth()
	return x >= start && x < p.width
}

func formatUserMessage(timestamp, role, content string) string {
	greenBold := "\x1b[32;1m"
	reset := "\x1b[0m"
	bar := greenBold + "┃" + reset

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s %s %s\n", bar, timestamp, role))
	for _, line := range strings.Split(content, "\n") {
		result.WriteString(fmt.Sprintf("%s %s\n", bar, line))
	}
	result.WriteString("\n")

	return result.String()
}
