package connect4

// State is the lifecycle state of a Session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateWon
	StateTied
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateInProgress:
		return "in progress"
	case StateWon:
		return "won"
	case StateTied:
		return "tied"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted in this state.
func (s State) Terminal() bool {
	return s == StateWon || s == StateTied
}

// Outcome describes what ApplyMove did with a column.
type Outcome int

const (
	// OutcomeRejected means the input was ignored: bad column, full
	// column, or no game in progress. Nothing changed.
	OutcomeRejected Outcome = iota
	OutcomePlaced
	OutcomeWon
	OutcomeTied
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomePlaced:
		return "placed"
	case OutcomeWon:
		return "won"
	case OutcomeTied:
		return "tied"
	default:
		return "unknown"
	}
}

// MoveResult is returned by ApplyMove.
// Row, Col and Player are only meaningful when Accepted() is true.
type MoveResult struct {
	Outcome Outcome
	Row     int
	Col     int
	Player  *Player
}

// Accepted reports whether the move changed the board.
func (r MoveResult) Accepted() bool {
	return r.Outcome != OutcomeRejected
}

// BoardView is the read-only side of a Board handed out by Session.
type BoardView interface {
	Height() int
	Width() int
	At(row, col int) *Player
	Occupied() int
}

// Session runs one two-player game at a time on a fixed-size board.
// It is the only mutator of its Board and is not safe for concurrent use.
type Session struct {
	height int
	width  int

	board   *Board
	first   *Player
	second  *Player
	current *Player
	winner  *Player
	state   State
	moves   int

	listeners []Listener
}

// NewSession creates a session for height x width boards.
// Listeners receive every notification for the session's lifetime.
func NewSession(height, width int, listeners ...Listener) *Session {
	return &Session{
		height:    height,
		width:     width,
		board:     NewBoard(height, width),
		state:     StateNotStarted,
		listeners: listeners,
	}
}

// Subscribe registers another listener.
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Start begins a new game with first to move. Calling it again discards
// the previous game entirely.
func (s *Session) Start(first, second *Player) {
	s.board = NewBoard(s.height, s.width)
	s.first = first
	s.second = second
	s.current = first
	s.winner = nil
	s.state = StateInProgress
	s.moves = 0

	for _, l := range s.listeners {
		l.GameStarted(first, second)
	}
}

// ApplyMove drops the current player's piece into col.
// Invalid input (column out of range, full column, game not in progress)
// is silently ignored and reported as OutcomeRejected.
func (s *Session) ApplyMove(col int) MoveResult {
	if s.state != StateInProgress {
		return MoveResult{Outcome: OutcomeRejected}
	}

	row, ok := s.board.DropRow(col)
	if !ok {
		return MoveResult{Outcome: OutcomeRejected}
	}

	p := s.current
	s.board.Place(row, col, p)
	s.moves++
	for _, l := range s.listeners {
		l.PieceDropped(row, col, p)
	}

	result := MoveResult{Outcome: OutcomePlaced, Row: row, Col: col, Player: p}

	switch {
	case s.board.HasWinFor(p, row, col):
		s.state = StateWon
		s.winner = p
		result.Outcome = OutcomeWon
		for _, l := range s.listeners {
			l.GameWon(p)
		}
	case s.board.IsFull():
		s.state = StateTied
		result.Outcome = OutcomeTied
		for _, l := range s.listeners {
			l.GameTied()
		}
	default:
		s.current = s.other(p)
	}

	return result
}

// other returns the opponent of p.
func (s *Session) other(p *Player) *Player {
	if p == s.first {
		return s.second
	}
	return s.first
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Over reports whether the game has ended.
func (s *Session) Over() bool {
	return s.state.Terminal()
}

// Current returns the player to move, or the last mover once the game is
// over. Nil before Start.
func (s *Session) Current() *Player {
	return s.current
}

// Winner returns the winning player, or nil unless the state is StateWon.
func (s *Session) Winner() *Player {
	return s.winner
}

// Players returns both players in turn order.
func (s *Session) Players() (first, second *Player) {
	return s.first, s.second
}

// Moves returns the number of accepted moves in the current game.
func (s *Session) Moves() int {
	return s.moves
}

// Board returns a read-only view of the current board.
func (s *Session) Board() BoardView {
	return s.board
}

// Height returns the configured number of rows.
func (s *Session) Height() int {
	return s.height
}

// Width returns the configured number of columns.
func (s *Session) Width() int {
	return s.width
}
