package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// KeyMap holds the game key bindings and translates key messages to
// inputs. It also feeds the help bar.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Drop       key.Binding
	Column     key.Binding
	Restart    key.Binding
	NewPlayers key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "drop"),
		),
		Column: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "drop in column"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		NewPlayers: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new players"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Drop, k.Restart, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Drop, k.Column},
		{k.Restart, k.NewPlayers, k.Help, k.Quit},
	}
}

// Map translates a key message to an input.
// Digit keys name a zero-based column directly.
func (k KeyMap) Map(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Do(core.ActionQuit)
	case key.Matches(msg, k.Left):
		return core.Do(core.ActionLeft)
	case key.Matches(msg, k.Right):
		return core.Do(core.ActionRight)
	case key.Matches(msg, k.Drop):
		return core.Do(core.ActionDrop)
	case key.Matches(msg, k.Column):
		return core.Drop(int(msg.String()[0] - '1'))
	case key.Matches(msg, k.Restart):
		return core.Do(core.ActionRestart)
	case key.Matches(msg, k.NewPlayers):
		return core.Do(core.ActionNewPlayers)
	case key.Matches(msg, k.Help):
		return core.Do(core.ActionHelp)
	}
	return core.NoInput
}
