package connect4

// Listener receives state changes from a Session.
// Calls happen synchronously from Start and ApplyMove, in order.
type Listener interface {
	// GameStarted is called after Start has reset the board.
	GameStarted(first, second *Player)

	// PieceDropped is called for every accepted move with the cell the
	// piece landed in and the player who dropped it.
	PieceDropped(row, col int, p *Player)

	// GameWon is called once when p completes a run.
	GameWon(p *Player)

	// GameTied is called once when the board fills without a winner.
	GameTied()
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnGameStarted  func(first, second *Player)
	OnPieceDropped func(row, col int, p *Player)
	OnGameWon      func(p *Player)
	OnGameTied     func()
}

func (f ListenerFuncs) GameStarted(first, second *Player) {
	if f.OnGameStarted != nil {
		f.OnGameStarted(first, second)
	}
}

func (f ListenerFuncs) PieceDropped(row, col int, p *Player) {
	if f.OnPieceDropped != nil {
		f.OnPieceDropped(row, col, p)
	}
}

func (f ListenerFuncs) GameWon(p *Player) {
	if f.OnGameWon != nil {
		f.OnGameWon(p)
	}
}

func (f ListenerFuncs) GameTied() {
	if f.OnGameTied != nil {
		f.OnGameTied()
	}
}
