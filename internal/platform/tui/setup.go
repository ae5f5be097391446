package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// setupKeyMap holds the bindings of the color form.
type setupKeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Start key.Binding
	Quit  key.Binding
}

func defaultSetupKeyMap() setupKeyMap {
	return setupKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// SetupModel is the form where both players pick a color. Any string is
// accepted; an empty field falls back to its default.
type SetupModel struct {
	inputs   [2]textinput.Model
	defaults [2]string
	focus    int
	keys     setupKeyMap
	renderer *lipgloss.Renderer

	width  int
	height int

	done     bool
	quitting bool
}

// NewSetupModel creates the form prefilled with the given colors.
func NewSetupModel(one, two string, r *lipgloss.Renderer, width, height int) SetupModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	m := SetupModel{
		defaults: [2]string{one, two},
		keys:     defaultSetupKeyMap(),
		renderer: r,
		width:    width,
		height:   height,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = m.defaults[i]
		ti.SetValue(m.defaults[i])
		ti.CharLimit = 32
		ti.Width = 20
		ti.Prompt = "> "
		ti.PromptStyle = r.NewStyle().Foreground(lipgloss.Color("241"))
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	return m
}

// Init starts the cursor blinking.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Start):
			m.done = true
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % len(m.inputs))
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves the cursor to field i.
func (m *SetupModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// Colors returns the chosen colors, with empty fields replaced by their
// defaults.
func (m SetupModel) Colors() (one, two string) {
	return m.color(0), m.color(1)
}

func (m SetupModel) color(i int) string {
	if v := strings.TrimSpace(m.inputs[i].Value()); v != "" {
		return v
	}
	return m.defaults[i]
}

// Done returns true once the user submitted the form.
func (m SetupModel) Done() bool {
	return m.done
}

// IsQuitting returns true if the user left the form.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// View renders the form centered on screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	r := m.renderer
	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	labelStyle := r.NewStyle().Width(10)
	hintStyle := r.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("CONNECT FOUR"))
	b.WriteString("\n")

	for i, input := range m.inputs {
		label := "Player 1"
		if i == 1 {
			label = "Player 2"
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center,
			labelStyle.Render(label),
			input.View(),
			" ",
			Swatch(r, m.color(i)),
		)
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("tab: switch field   enter: start game   esc: quit"))

	form := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3).
		Render(b.String())

	if m.width == 0 || m.height == 0 {
		return form
	}
	return r.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}
