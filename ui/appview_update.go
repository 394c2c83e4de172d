package ui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"chatbox/model"
	"chatbox/widget"
)

const noticeDuration = 3 * time.Second

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.panel.setSize(a.width, a.height-chromeRows)
		a.ready = true
		return a, nil

	case model.ReplyMsg:
		if _, ok := a.ctrl.Resolve(msg.SubmissionID, msg.Result); !ok {
			log.Warn().Str("submission", msg.SubmissionID).Msg("reply for unknown submission dropped")
		}
		return a, nil

	case spinner.TickMsg:
		// Keep ticking only while a placeholder is on screen
		if a.ctrl.Pending() == 0 {
			return a, nil
		}
		var cmd tea.Cmd
		a.panel.spinner, cmd = a.panel.spinner.Update(msg)
		a.panel.refresh(false)
		return a, cmd

	case model.ClipboardMsg:
		if msg.Err != nil {
			return a.setNotice("Copy failed: " + msg.Err.Error())
		}
		return a.setNotice("Copied last reply")

	case model.NoticeExpiredMsg:
		if msg.Seq == a.noticeSeq {
			a.notice = ""
		}
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.panel.input, cmd = a.panel.input.Update(msg)
	return a, cmd
}

func (a AppView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := a.cfg.Keybindings
	keyStr := msg.String()

	// Always-global shortcuts
	if keyStr == "ctrl+c" || kb.Matches("quit", keyStr) {
		return a.quit()
	}
	if kb.Matches("help", keyStr) {
		a.showHelp = !a.showHelp
		return a, nil
	}

	if a.showHelp {
		if keyStr == "esc" {
			a.showHelp = false
		}
		return a, nil
	}

	switch {
	case keyStr == "enter", kb.Matches("send", keyStr):
		return a.submit()

	case kb.Matches("clear_input", keyStr):
		a.panel.ClearInput()
		return a, nil

	case kb.Matches("yank_last_reply", keyStr):
		reply, ok := a.panel.lastReply()
		if !ok {
			return a.setNotice("Nothing to copy yet")
		}
		return a, copyToClipboard(reply.Text)

	case kb.Matches("scroll_down", keyStr), kb.Matches("scroll_down_arrow", keyStr):
		a.panel.viewport.LineDown(1)
		return a, nil

	case kb.Matches("scroll_up", keyStr), kb.Matches("scroll_up_arrow", keyStr):
		a.panel.viewport.LineUp(1)
		return a, nil

	case kb.Matches("half_page_down", keyStr):
		a.panel.viewport.HalfPageDown()
		return a, nil

	case kb.Matches("half_page_up", keyStr):
		a.panel.viewport.HalfPageUp()
		return a, nil

	case kb.Matches("page_down", keyStr):
		a.panel.viewport.PageDown()
		return a, nil

	case kb.Matches("page_up", keyStr):
		a.panel.viewport.PageUp()
		return a, nil

	case kb.Matches("scroll_to_top", keyStr):
		a.panel.viewport.GotoTop()
		return a, nil

	case kb.Matches("scroll_to_bottom", keyStr):
		a.panel.viewport.GotoBottom()
		return a, nil
	}

	// Everything else is typing
	var cmd tea.Cmd
	a.panel.input, cmd = a.panel.input.Update(msg)
	return a, cmd
}

func (a AppView) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.showHelp || !a.ready || a.tooSmall() {
		return a, nil
	}

	inputRowY := a.height - 2
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
		msg.Y == inputRowY && a.panel.sendButtonHit(msg.X) {
		return a.submit()
	}

	// Wheel scrolling
	var cmd tea.Cmd
	a.panel.viewport, cmd = a.panel.viewport.Update(msg)
	return a, cmd
}

// submit is the single path for Enter, the send keybinding and a click on
// the send button.
func (a AppView) submit() (tea.Model, tea.Cmd) {
	wasIdle := a.ctrl.Pending() == 0

	sub, err := a.ctrl.Begin()
	if errors.Is(err, model.ErrEmptyInput) {
		return a, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("submit failed")
		return a, nil
	}

	cmds := []tea.Cmd{exchangeCmd(a.ctx, sub)}
	if wasIdle {
		cmds = append(cmds, a.panel.spinner.Tick)
	}
	return a, tea.Batch(cmds...)
}

// exchangeCmd runs the network call off the UI goroutine and delivers the
// outcome as a ReplyMsg.
func exchangeCmd(ctx context.Context, sub *widget.Submission) tea.Cmd {
	return func() tea.Msg {
		return model.ReplyMsg{
			SubmissionID: sub.ID,
			Result:       sub.Exchange(ctx),
		}
	}
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return model.ClipboardMsg{Err: clipboard.WriteAll(text)}
	}
}

func (a AppView) setNotice(text string) (tea.Model, tea.Cmd) {
	a.noticeSeq++
	a.notice = text
	seq := a.noticeSeq
	return a, tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return model.NoticeExpiredMsg{Seq: seq}
	})
}

func (a AppView) quit() (tea.Model, tea.Cmd) {
	a.cancel()
	return a, tea.Quit
}
