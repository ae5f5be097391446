package connect4

// Snapshot captures the complete session state for tests and debugging.
// Cells hold 0 for empty, 1 for the first player and 2 for the second.
type Snapshot struct {
	State   State
	Moves   int
	Current int // 1 or 2, 0 before Start
	Winner  int // 1 or 2, 0 unless won
	Cells   [][]int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	cells := make([][]int, s.board.Height())
	for y := range cells {
		cells[y] = make([]int, s.board.Width())
		for x := range cells[y] {
			cells[y][x] = s.index(s.board.At(y, x))
		}
	}

	return Snapshot{
		State:   s.state,
		Moves:   s.moves,
		Current: s.index(s.current),
		Winner:  s.index(s.winner),
		Cells:   cells,
	}
}

// index maps a player to its turn-order number.
func (s *Session) index(p *Player) int {
	switch {
	case p == nil:
		return 0
	case p == s.first:
		return 1
	case p == s.second:
		return 2
	default:
		return 0
	}
}
