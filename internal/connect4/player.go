package connect4

// Player identifies one side of a game.
// Players are compared by pointer identity; two players with the same
// color are still different players.
type Player struct {
	label string
	color string
}

// NewPlayer creates a player with a display label and color.
// The color is an opaque display attribute and is not validated:
// "orange", "#ff3366" and "208" are all accepted as-is.
func NewPlayer(label, color string) *Player {
	return &Player{label: label, color: color}
}

// Label returns the display label (e.g., "Player 1").
func (p *Player) Label() string {
	return p.label
}

// Color returns the display color passed at construction.
func (p *Player) Color() string {
	return p.color
}

// String returns the name used in status messages ("Player orange").
func (p *Player) String() string {
	if p == nil {
		return "nobody"
	}
	return "Player " + p.color
}
