package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/connect4"
	"github.com/vovakirdan/tui-connect4/internal/core"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Height int
	Width  int
	First  *connect4.Player
	Second *connect4.Player

	// Runtime is the initial terminal size.
	Runtime core.RuntimeConfig

	// Renderer styles the output. Nil uses the process default; SSH
	// sessions pass their own.
	Renderer *lipgloss.Renderer

	// Logger receives game events. Nil discards them.
	Logger *log.Logger
}

// GameModel is the Bubble Tea model for one board. It owns a single
// Session for its lifetime; restarting calls Start on the same Session,
// so the view and logger stay subscribed exactly once.
type GameModel struct {
	session *connect4.Session
	view    *BoardView
	screen  *core.Screen
	painter *Painter
	keys    KeyMap
	help    help.Model
	config  core.RuntimeConfig

	helpStyle lipgloss.Style

	cursor     int
	quitting   bool
	newPlayers bool
}

// NewGameModel creates a model and starts the first game.
func NewGameModel(opts GameOptions) GameModel {
	view := NewBoardView(opts.Height, opts.Width, opts.Runtime)
	session := connect4.NewSession(opts.Height, opts.Width, view, NewEventLogger(opts.Logger))

	painter := NewPainter(opts.Renderer)
	h := help.New()
	h.Width = opts.Runtime.ScreenW

	m := GameModel{
		session:   session,
		view:      view,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		painter:   painter,
		keys:      DefaultKeyMap(),
		help:      h,
		config:    opts.Runtime,
		helpStyle: painter.Renderer().NewStyle().Foreground(lipgloss.Color("241")),
		cursor:    opts.Width / 2,
	}
	m.layout()

	session.Start(opts.First, opts.Second)
	return m
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleInput(m.keys.Map(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		// The game survives resizes; only the layout changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case dropTickMsg:
		if m.view.Advance(msg.seq) {
			return m, dropTickCmd(msg.seq)
		}
		return m, nil
	}

	return m, nil
}

// handleMouse turns a left click on a column into a drop and moves the
// cursor along while the button is held.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	col, ok := m.view.ColumnAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		return m.handleInput(core.Drop(col))
	case tea.MouseActionMotion:
		m.cursor = col
	}
	return m, nil
}

// handleInput applies one decoded input.
func (m GameModel) handleInput(in core.Input) (tea.Model, tea.Cmd) {
	switch in.Action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft:
		m.cursor = core.Clamp(m.cursor-1, 0, m.session.Width()-1)

	case core.ActionRight:
		m.cursor = core.Clamp(m.cursor+1, 0, m.session.Width()-1)

	case core.ActionDrop:
		col := m.cursor
		if in.HasColumn() {
			col = in.Column
		}
		result := m.session.ApplyMove(col)
		if !result.Accepted() {
			return m, nil
		}
		m.cursor = result.Col
		if m.view.Animating() {
			return m, dropTickCmd(m.view.Seq())
		}

	case core.ActionRestart:
		first, second := m.session.Players()
		m.session.Start(first, second)

	case core.ActionNewPlayers:
		m.newPlayers = true

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}

	return m, nil
}

// layout sizes the board area to whatever the help bar leaves free.
func (m *GameModel) layout() {
	helpLines := lipgloss.Height(m.help.View(m.keys))
	h := max(m.config.ScreenH-helpLines, 0)

	m.screen.Resize(m.config.ScreenW, h)
	m.view.Resize(m.config.ScreenW, h)
}

// View renders the board and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.view.Render(m.screen, m.cursor)
	return m.painter.Paint(m.screen) + "\n" + m.helpStyle.Render(m.help.View(m.keys))
}

// Session returns the game session.
func (m GameModel) Session() *connect4.Session {
	return m.session
}

// Cursor returns the highlighted column.
func (m GameModel) Cursor() int {
	return m.cursor
}

// IsQuitting returns true if the user asked to exit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// WantsNewPlayers returns true if the user asked for the setup form.
func (m GameModel) WantsNewPlayers() bool {
	return m.newPlayers
}
