package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"daygrid/internal/config"
	"daygrid/internal/source"
	"daygrid/internal/state"
)

// Zoom gesture step per keypress. Applied on "gesture completion", which for
// a keyboard is every press.
const zoomStep = 1.2

// FileChangedMsg is sent by the shell when the events file changes on disk.
type FileChangedMsg struct {
	Path string
}

type tickMsg struct{}

// Model is the bubbletea front-end over the widget engine. It owns no
// calendar state of its own: every navigation and zoom key delegates to the
// state controller, and the view is recomputed from the controller's
// answers.
type Model struct {
	cfg  *config.Config
	ctrl *state.Controller
	src  source.EventSource
	log  *zap.Logger

	width     int
	height    int
	zoomScale float64
	message   string

	styles Styles
}

type Styles struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Today    lipgloss.Style
	Weekend  lipgloss.Style
	Header   lipgloss.Style
	Event    lipgloss.Style
	NowLine  lipgloss.Style
	Help     lipgloss.Style
	Border   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("220")).
			Bold(true),
		Today: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		Weekend: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true).
			Underline(true),
		Event: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")),
		NowLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
	}
}

func NewModel(cfg *config.Config, ctrl *state.Controller, src source.EventSource, log *zap.Logger) *Model {
	return &Model{
		cfg:       cfg,
		ctrl:      ctrl,
		src:       src,
		log:       log,
		zoomScale: 1.0,
		styles:    DefaultStyles(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.tickCmd(),
	)
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.GetRefreshInterval(), func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tickMsg:
		// The tea loop is the engine's single logical thread; the
		// periodic refresh only touches the sampled now instant.
		m.ctrl.RefreshNow()
		return m, m.tickCmd()

	case FileChangedMsg:
		m.reloadEvents()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "l", "right":
		m.ctrl.MoveToNextDay()

	case "h", "left":
		m.ctrl.MoveToPreviousDay()

	case "j", "down":
		m.ctrl.SelectDate(m.ctrl.Selected().AddDate(0, 0, 7))

	case "k", "up":
		m.ctrl.SelectDate(m.ctrl.Selected().AddDate(0, 0, -7))

	case "t":
		m.ctrl.MoveToToday()

	case "+", "=":
		m.zoomScale *= zoomStep
		m.ctrl.UpdateZoom(m.zoomScale)

	case "-", "_":
		m.zoomScale /= zoomStep
		m.ctrl.UpdateZoom(m.zoomScale)

	case "m":
		m.ctrl.ToggleMonthView()

	case "r":
		m.reloadEvents()
	}

	return m, nil
}

func (m *Model) reloadEvents() {
	events, err := m.src.Events()
	if err != nil {
		m.log.Warn("event reload failed", zap.Error(err))
		m.message = fmt.Sprintf("reload failed: %v", err)
		return
	}
	if err := m.ctrl.SetEvents(events); err != nil {
		m.log.Warn("event collection rejected", zap.Error(err))
		m.message = fmt.Sprintf("bad events: %v", err)
		return
	}
	m.message = fmt.Sprintf("loaded %d events", len(events))
}
