package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/connect4"
)

// EventLogger is a connect4.Listener that writes game events to a logger.
type EventLogger struct {
	logger *log.Logger
}

// NewEventLogger creates an event logger. A nil logger discards output.
func NewEventLogger(logger *log.Logger) *EventLogger {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &EventLogger{logger: logger}
}

// GameStarted logs the two players.
func (e *EventLogger) GameStarted(first, second *connect4.Player) {
	e.logger.Info("game started", "first", first.Color(), "second", second.Color())
}

// PieceDropped logs each accepted move.
func (e *EventLogger) PieceDropped(row, col int, p *connect4.Player) {
	e.logger.Debug("piece dropped", "player", p.Color(), "row", row, "col", col)
}

// GameWon logs the winner.
func (e *EventLogger) GameWon(p *connect4.Player) {
	e.logger.Info("game won", "winner", p.String())
}

// GameTied logs a full board.
func (e *EventLogger) GameTied() {
	e.logger.Info("game tied")
}
