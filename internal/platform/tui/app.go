package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/connect4"
	"github.com/vovakirdan/tui-connect4/internal/core"
)

// AppOptions configures an AppModel.
type AppOptions struct {
	Height int
	Width  int

	// Colors prefilled in the setup form.
	Player1Color string
	Player2Color string

	// SkipSetup starts a game right away with the prefilled colors.
	SkipSetup bool

	Runtime  core.RuntimeConfig
	Renderer *lipgloss.Renderer
	Logger   *log.Logger
}

// AppModel manages the full session flow: setup -> game -> setup.
// It is the top-level model for both local and SSH play.
type AppModel struct {
	opts     AppOptions
	setup    SetupModel
	game     *GameModel
	inGame   bool
	quitting bool
}

// NewAppModel creates the top-level model.
func NewAppModel(opts AppOptions) AppModel {
	m := AppModel{opts: opts}
	m.setup = m.newSetup()

	if opts.SkipSetup {
		m.startGame(opts.Player1Color, opts.Player2Color)
	}
	return m
}

func (m AppModel) newSetup() SetupModel {
	return NewSetupModel(m.opts.Player1Color, m.opts.Player2Color, m.opts.Renderer,
		m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
}

// startGame creates a game for the two colors.
func (m *AppModel) startGame(one, two string) {
	game := NewGameModel(GameOptions{
		Height:   m.opts.Height,
		Width:    m.opts.Width,
		First:    connect4.NewPlayer("Player 1", one),
		Second:   connect4.NewPlayer("Player 2", two),
		Runtime:  m.opts.Runtime,
		Renderer: m.opts.Renderer,
		Logger:   m.opts.Logger,
	})
	m.game = &game
	m.inGame = true
}

// Init initializes the current screen.
func (m AppModel) Init() tea.Cmd {
	if m.inGame {
		return m.game.Init()
	}
	return m.setup.Init()
}

// Update handles messages for the session.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Remember the size for screens created later.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	if m.inGame && m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateSetup(msg)
}

// updateSetup handles updates while the form is shown.
func (m AppModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSetup, cmd := m.setup.Update(msg)
	if setup, ok := newSetup.(SetupModel); ok {
		m.setup = setup
	}

	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.setup.Done() {
		one, two := m.setup.Colors()
		m.opts.Player1Color, m.opts.Player2Color = one, two
		m.startGame(one, two)
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while a game is shown.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if game, ok := newModel.(GameModel); ok {
		m.game = &game
	}

	if m.game.WantsNewPlayers() {
		m.inGame = false
		m.game = nil
		m.setup = m.newSetup()
		return m, m.setup.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inGame && m.game != nil {
		return m.game.View()
	}
	return m.setup.View()
}

// InGame reports whether a board is shown.
func (m AppModel) InGame() bool {
	return m.inGame
}

// Game returns the running game, or nil while the form is shown.
func (m AppModel) Game() *GameModel {
	return m.game
}

// Run starts a local program and blocks until the user quits.
func Run(opts AppOptions) error {
	p := tea.NewProgram(
		NewAppModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
