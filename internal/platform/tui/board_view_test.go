package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-connect4/internal/connect4"
	"github.com/vovakirdan/tui-connect4/internal/core"
)

// On an 80x24 screen a 6x7 board is 36 cells wide and starts at x=22.
const testBoardX = 22

func cellOrigin(row, col int) (x, y int) {
	return testBoardX + col*cellWidth + 1, boardY + row*cellHeight + 1
}

func newTestView() (*BoardView, *core.Screen) {
	cfg := core.DefaultConfig()
	return NewBoardView(connect4.DefaultHeight, connect4.DefaultWidth, cfg), core.NewScreen(cfg.ScreenW, cfg.ScreenH)
}

func screenContains(s *core.Screen, text string) bool {
	return strings.Contains(s.String(), text)
}

func TestBoardViewFollowsSession(t *testing.T) {
	view, screen := newTestView()
	red := connect4.NewPlayer("Player 1", "red")
	yellow := connect4.NewPlayer("Player 2", "yellow")

	session := connect4.NewSession(connect4.DefaultHeight, connect4.DefaultWidth, view)
	session.Start(red, yellow)
	session.ApplyMove(3)
	view.Settle()
	view.Render(screen, 3)

	x, y := cellOrigin(5, 3)
	cell := screen.GetCell(x, y)
	if cell.Rune != '▐' {
		t.Errorf("expected piece at (%d, %d), got %q", x, y, cell.Rune)
	}
	if cell.Color != core.Color("red") {
		t.Errorf("expected red piece, got %q", cell.Color)
	}

	if !strings.Contains(screen.Row(statusY), "Player yellow to move") {
		t.Errorf("status row = %q", screen.Row(statusY))
	}
}

func TestBoardViewUsesOnlyNotifications(t *testing.T) {
	view, screen := newTestView()
	a := connect4.NewPlayer("Player 1", "green")
	b := connect4.NewPlayer("Player 2", "blue")

	view.GameStarted(a, b)
	if got := view.Status(); got != "Player green to move" {
		t.Errorf("status after start = %q", got)
	}

	view.PieceDropped(5, 0, a)
	view.PieceDropped(5, 1, b)
	view.PieceDropped(4, 0, a)
	if got := view.Status(); got != "Player blue to move" {
		t.Errorf("status after three drops = %q", got)
	}

	view.GameWon(a)
	view.Settle()
	view.Render(screen, 0)

	if !screenContains(screen, "Player green won!") {
		t.Error("expected win banner")
	}
	if !screenContains(screen, "R: rematch") {
		t.Error("expected rematch hint")
	}

	x, y := cellOrigin(5, 1)
	if got := screen.GetCell(x, y).Color; got != core.Color("blue") {
		t.Errorf("expected blue piece at (5, 1), got %q", got)
	}
}

func TestBoardViewTie(t *testing.T) {
	view, screen := newTestView()
	a := connect4.NewPlayer("Player 1", "red")
	b := connect4.NewPlayer("Player 2", "yellow")

	view.GameStarted(a, b)
	view.GameTied()
	view.Render(screen, 0)

	if !screenContains(screen, "Tie!") {
		t.Error("expected tie banner")
	}
}

func TestBoardViewRestartClears(t *testing.T) {
	view, screen := newTestView()
	a := connect4.NewPlayer("Player 1", "red")
	b := connect4.NewPlayer("Player 2", "yellow")

	view.GameStarted(a, b)
	view.PieceDropped(5, 2, a)
	view.GameWon(a)
	view.GameStarted(a, b)
	view.Render(screen, 0)

	x, y := cellOrigin(5, 2)
	if got := screen.GetCell(x, y).Rune; got != ' ' {
		t.Errorf("expected empty cell after restart, got %q", got)
	}
	if screenContains(screen, "won!") {
		t.Error("banner should be gone after restart")
	}
}

func TestBoardViewColumnAt(t *testing.T) {
	view, _ := newTestView()
	_, by := view.origin()
	_, h := view.boardSize()

	tests := []struct {
		name   string
		x, y   int
		col    int
		wantOK bool
	}{
		{"header of first column", testBoardX + 2, headerY, 0, true},
		{"cursor row", testBoardX + 7, arrowY, 1, true},
		{"inside last column", testBoardX + 6*cellWidth + 2, by + 3, 6, true},
		{"right border", testBoardX + 7*cellWidth, by + 1, 6, true},
		{"left of board", testBoardX - 1, by + 1, 0, false},
		{"status row", testBoardX + 2, statusY, 0, false},
		{"below board", testBoardX + 2, by + h, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, ok := view.ColumnAt(tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("ColumnAt(%d, %d) ok = %v, want %v", tt.x, tt.y, ok, tt.wantOK)
			}
			if ok && col != tt.col {
				t.Errorf("ColumnAt(%d, %d) = %d, want %d", tt.x, tt.y, col, tt.col)
			}
		})
	}
}

func TestBoardViewAnimation(t *testing.T) {
	view, _ := newTestView()
	a := connect4.NewPlayer("Player 1", "red")
	b := connect4.NewPlayer("Player 2", "yellow")

	view.GameStarted(a, b)
	view.PieceDropped(5, 0, a)
	if !view.Animating() {
		t.Fatal("expected a falling piece")
	}

	seq := view.Seq()
	if view.Advance(seq - 1) {
		t.Error("stale tick should be ignored")
	}

	frames := 0
	for view.Advance(seq) {
		frames++
	}
	if frames != 4 {
		t.Errorf("expected 4 more frames for row 5, got %d", frames)
	}
	if view.Animating() {
		t.Error("animation should have settled")
	}

	// Top row has nowhere to fall.
	view.PieceDropped(0, 1, b)
	if view.Animating() {
		t.Error("top-row drop should not animate")
	}
}

func TestBoardViewTooSmall(t *testing.T) {
	view, _ := newTestView()
	view.Resize(20, 10)
	screen := core.NewScreen(20, 10)

	view.Render(screen, 0)

	if !screenContains(screen, "Window too small") {
		t.Error("expected too-small message")
	}
	if _, ok := view.ColumnAt(5, 5); ok {
		t.Error("no column should be hit while the board is hidden")
	}
}
