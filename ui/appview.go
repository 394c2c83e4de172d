package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chatbox/config"
	"chatbox/model"
	"chatbox/widget"
)

// Rows outside the viewport: title, separator, input row and status bar.
const chromeRows = 4

type AppView struct {
	cfg  *config.Config
	ctrl *widget.Controller

	// Display state lives behind a pointer; see chatPanel.
	panel *chatPanel

	// Context for in-flight exchanges, cancelled on quit
	ctx    context.Context
	cancel context.CancelFunc

	// Window state
	width  int
	height int
	ready  bool

	showHelp bool

	// Transient status-bar notice (clipboard result etc.)
	notice    string
	noticeSeq int

	version string
	license string
}

// NewAppView builds the chat view. exchanger performs the network call for
// each submission; it is usually a *client.Client.
func NewAppView(cfg *config.Config, exchanger model.Exchanger, version, license string) AppView {
	panel := newChatPanel("Type a message and press Enter or click Send...")

	ctrl := widget.New(panel, exchanger, widget.Options{
		Placeholder: cfg.Widget.Placeholder,
	})
	panel.isPlaceholder = ctrl.IsPlaceholder

	ctx, cancel := context.WithCancel(context.Background())

	return AppView{
		cfg:     cfg,
		ctrl:    ctrl,
		panel:   panel,
		ctx:     ctx,
		cancel:  cancel,
		version: version,
		license: license,
	}
}

// tooSmall reports whether the terminal cannot fit the chrome plus a
// couple of message rows. Nothing is drawn, so nothing is clickable.
func (a AppView) tooSmall() bool {
	return a.width < 20 || a.height < chromeRows+2
}

func (a AppView) Init() tea.Cmd {
	return textinput.Blink
}

// Messages returns the current display list.
func (a AppView) Messages() []model.Message {
	return a.panel.Messages()
}

func (a AppView) View() string {
	if !a.ready {
		return "Loading chatbox..."
	}
	if a.tooSmall() {
		return "Terminal too small"
	}

	if a.showHelp {
		return a.renderHelpModal(a.width, a.height)
	}

	// Title bar - "Chat - <endpoint>"
	title := TitleStyle.Render(a.cfg.Widget.Title) +
		DimStyle.Render(fmt.Sprintf(" - %s", a.cfg.EndpointURL()))

	// Separator (empty line forces spacing under the header)
	separator := ""

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		separator,
		a.panel.viewport.View(),
		a.panel.inputRow(a.ctrl.Pending() > 0),
		a.renderStatusBar(),
	)
}

func (a AppView) renderStatusBar() string {
	kb := a.cfg.Keybindings

	status := FormatFooter(
		"Enter", "Send",
		kb.DisplayActionKey("yank_last_reply"), "Copy",
		kb.DisplayActionKey("help"), "Help",
		kb.DisplayActionKey("quit"), "Quit",
	)

	if pending := a.ctrl.Pending(); pending > 0 {
		status += "  " + a.panel.spinner.View() + fmt.Sprintf(" waiting for %d %s", pending, plural(pending, "reply", "replies"))
	}
	if a.notice != "" {
		status += "  " + NoticeStyle.Render(a.notice)
	}

	return StatusStyle.Render(status)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
