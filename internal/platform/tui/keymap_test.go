package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

func TestKeyMapMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Input
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.Do(core.ActionLeft)},
		{"h", runeKey('h'), core.Do(core.ActionLeft)},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.Do(core.ActionRight)},
		{"l", runeKey('l'), core.Do(core.ActionRight)},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Do(core.ActionDrop)},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Do(core.ActionDrop)},
		{"digit 1", runeKey('1'), core.Drop(0)},
		{"digit 9", runeKey('9'), core.Drop(8)},
		{"restart", runeKey('r'), core.Do(core.ActionRestart)},
		{"new players", runeKey('n'), core.Do(core.ActionNewPlayers)},
		{"help", runeKey('?'), core.Do(core.ActionHelp)},
		{"q", runeKey('q'), core.Do(core.ActionQuit)},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Do(core.ActionQuit)},
		{"unbound", runeKey('x'), core.NoInput},
		{"digit 0", runeKey('0'), core.NoInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Map(tt.msg); got != tt.want {
				t.Errorf("Map(%q) = %+v, want %+v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}

	n := 0
	for _, group := range keys.FullHelp() {
		n += len(group)
	}
	if n != 8 {
		t.Errorf("full help lists %d bindings, want 8", n)
	}
}
