// Package connect4 implements the Connect Four rules: board occupancy,
// gravity drops, four-in-a-row detection and the two-player game session.
// It has no UI dependencies; renderers observe a Session through Listener.
package connect4

import "fmt"

// Board dimensions used when nothing else is configured.
const (
	DefaultHeight = 6
	DefaultWidth  = 7

	// WinLength is the number of aligned pieces needed to win.
	WinLength = 4
)

// direction is a (row, column) step used to walk a run.
type direction struct {
	dy, dx int
}

// runDirections are the four canonical run shapes:
// horizontal, vertical, diagonal down-right and diagonal down-left.
var runDirections = [4]direction{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Board is a height x width grid. Row 0 is the top row; pieces fall
// towards the highest row index. A nil cell is empty.
type Board struct {
	height int
	width  int
	cells  [][]*Player
}

// NewBoard creates an empty board. Dimensions must be positive.
func NewBoard(height, width int) *Board {
	cells := make([][]*Player, height)
	for y := range cells {
		cells[y] = make([]*Player, width)
	}
	return &Board{height: height, width: width, cells: cells}
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// inBounds reports whether (row, col) lies on the board.
func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// At returns the player occupying (row, col), or nil for an empty or
// out-of-bounds cell.
func (b *Board) At(row, col int) *Player {
	if !b.inBounds(row, col) {
		return nil
	}
	return b.cells[row][col]
}

// DropRow returns the row a piece dropped into col would land in.
// ok is false when the column is full or col is outside [0, width).
func (b *Board) DropRow(col int) (row int, ok bool) {
	if col < 0 || col >= b.width {
		return 0, false
	}
	for y := b.height - 1; y >= 0; y-- {
		if b.cells[y][col] == nil {
			return y, true
		}
	}
	return 0, false
}

// Place marks (row, col) as occupied by p.
// The cell must be empty; callers obtain row from DropRow.
func (b *Board) Place(row, col int, p *Player) {
	if b.cells[row][col] != nil {
		panic(fmt.Sprintf("connect4: cell (%d, %d) is already occupied", row, col))
	}
	b.cells[row][col] = p
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] == nil {
				return false
			}
		}
	}
	return true
}

// Occupied returns the number of occupied cells.
func (b *Board) Occupied() int {
	n := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] != nil {
				n++
			}
		}
	}
	return n
}

// Grid returns a copy of the cells, indexed [row][col].
func (b *Board) Grid() [][]*Player {
	grid := make([][]*Player, b.height)
	for y := range b.cells {
		grid[y] = make([]*Player, b.width)
		copy(grid[y], b.cells[y])
	}
	return grid
}

// HasWinFor reports whether the piece at (row, col) completes a run of
// at least WinLength pieces owned by p. Only runs through that cell are
// checked, which is enough when it is the last piece placed.
func (b *Board) HasWinFor(p *Player, row, col int) bool {
	if p == nil || b.At(row, col) != p {
		return false
	}

	for _, d := range runDirections {
		count := 1 + b.countFrom(p, row, col, d.dy, d.dx) + b.countFrom(p, row, col, -d.dy, -d.dx)
		if count >= WinLength {
			return true
		}
	}
	return false
}

// countFrom counts consecutive cells owned by p starting one step away
// from (row, col) in direction (dy, dx). It stops at the board edge.
func (b *Board) countFrom(p *Player, row, col, dy, dx int) int {
	n := 0
	for i := 1; i < WinLength; i++ {
		if b.At(row+dy*i, col+dx*i) != p {
			break
		}
		n++
	}
	return n
}

// HasWin scans every cell as the anchor of the four run shapes and
// reports whether any run of WinLength cells is fully owned by p.
// It is the exhaustive counterpart of HasWinFor.
func (b *Board) HasWin(p *Player) bool {
	if p == nil {
		return false
	}

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			for _, d := range runDirections {
				if b.runOwnedBy(p, y, x, d) {
					return true
				}
			}
		}
	}
	return false
}

// runOwnedBy reports whether the WinLength cells starting at (y, x) in
// direction d are all on the board and owned by p.
func (b *Board) runOwnedBy(p *Player, y, x int, d direction) bool {
	for i := 0; i < WinLength; i++ {
		cy, cx := y+d.dy*i, x+d.dx*i
		if !b.inBounds(cy, cx) || b.cells[cy][cx] != p {
			return false
		}
	}
	return true
}
