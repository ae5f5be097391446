package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-connect4/internal/connect4"
	"github.com/vovakirdan/tui-connect4/internal/core"
)

// Board layout, in screen cells.
const (
	cellWidth  = 5 // Width of each cell (including the left border)
	cellHeight = 2 // Height of each cell (including the top border)

	titleY  = 0
	statusY = 1
	arrowY  = 2
	headerY = 3
	boardY  = 4
)

const (
	pieceGlyph = "▐██▌"
	arrowGlyph = '▼'
)

// fall is a piece on its way down to its row.
type fall struct {
	row, col int
	y        int
	color    core.Color
	active   bool
}

// BoardView is the Renderer side of a game. It implements
// connect4.Listener and builds everything it draws from notifications:
// the grid from PieceDropped, the turn indicator by alternating after each
// drop, and the end banner from GameWon / GameTied.
type BoardView struct {
	height int
	width  int
	grid   [][]core.Color

	first  *connect4.Player
	second *connect4.Player
	next   *connect4.Player
	winner *connect4.Player
	tied   bool
	over   bool

	fall fall
	seq  int

	screenW int
	screenH int
}

// NewBoardView creates a view for height x width boards.
func NewBoardView(height, width int, cfg core.RuntimeConfig) *BoardView {
	v := &BoardView{
		height:  height,
		width:   width,
		screenW: cfg.ScreenW,
		screenH: cfg.ScreenH,
	}
	v.reset()
	return v
}

func (v *BoardView) reset() {
	v.grid = make([][]core.Color, v.height)
	for y := range v.grid {
		v.grid[y] = make([]core.Color, v.width)
	}
	v.winner = nil
	v.tied = false
	v.over = false
	v.fall = fall{}
	v.seq++
}

// GameStarted clears the board for a new game.
func (v *BoardView) GameStarted(first, second *connect4.Player) {
	v.reset()
	v.first = first
	v.second = second
	v.next = first
}

// PieceDropped records the piece and starts its fall animation.
func (v *BoardView) PieceDropped(row, col int, p *connect4.Player) {
	color := core.Color(p.Color())
	v.grid[row][col] = color

	v.seq++
	v.fall = fall{row: row, col: col, color: color, active: row > 0}

	if p == v.first {
		v.next = v.second
	} else {
		v.next = v.first
	}
}

// GameWon shows the winner banner.
func (v *BoardView) GameWon(p *connect4.Player) {
	v.winner = p
	v.over = true
}

// GameTied shows the tie banner.
func (v *BoardView) GameTied() {
	v.tied = true
	v.over = true
}

// Resize updates the screen size used for layout and hit testing.
func (v *BoardView) Resize(width, height int) {
	v.screenW = width
	v.screenH = height
}

// Animating reports whether a piece is still falling.
func (v *BoardView) Animating() bool {
	return v.fall.active
}

// Seq identifies the current animation.
func (v *BoardView) Seq() int {
	return v.seq
}

// Advance moves the falling piece down one row. It returns true while
// more frames are needed. Ticks from older animations are ignored.
func (v *BoardView) Advance(seq int) bool {
	if seq != v.seq || !v.fall.active {
		return false
	}
	v.fall.y++
	if v.fall.y >= v.fall.row {
		v.fall.active = false
	}
	return v.fall.active
}

// Settle ends any running animation.
func (v *BoardView) Settle() {
	v.fall.active = false
}

// Status returns the one-line game status.
func (v *BoardView) Status() string {
	switch {
	case v.winner != nil:
		return fmt.Sprintf("%s won!", v.winner)
	case v.tied:
		return "Tie!"
	case v.next != nil:
		return fmt.Sprintf("%s to move", v.next)
	default:
		return "Press R to start"
	}
}

// boardSize returns the drawn board size including borders.
func (v *BoardView) boardSize() (w, h int) {
	return v.width*cellWidth + 1, v.height*cellHeight + 1
}

// origin returns the top-left corner of the board grid.
func (v *BoardView) origin() (x, y int) {
	w, _ := v.boardSize()
	return (v.screenW - w) / 2, boardY
}

// tooSmall reports whether the board does not fit the screen.
func (v *BoardView) tooSmall() bool {
	w, h := v.boardSize()
	return v.screenW < w || v.screenH < boardY+h+1
}

// ColumnAt maps a screen position to a board column. Clicks on the
// column numbers, the cursor row or anywhere inside the grid count.
func (v *BoardView) ColumnAt(x, y int) (int, bool) {
	if v.tooSmall() {
		return 0, false
	}

	bx, by := v.origin()
	w, h := v.boardSize()
	area := core.NewRect(bx, arrowY, w, by+h-arrowY)
	if !area.Contains(x, y) {
		return 0, false
	}
	return core.Clamp((x-bx)/cellWidth, 0, v.width-1), true
}

// Render draws the board. cursor is the highlighted column.
func (v *BoardView) Render(dst *core.Screen, cursor int) {
	dst.Clear()

	if v.tooSmall() {
		v.renderTooSmall(dst)
		return
	}

	bx, by := v.origin()

	dst.DrawTextCentered(titleY, "C O N N E C T   F O U R", core.ColorDefault)
	v.renderStatus(dst)
	v.renderHeader(dst, bx, cursor)
	v.renderGrid(dst, bx, by)
	v.renderPieces(dst, bx, by)

	if v.over && !v.fall.active {
		v.renderBanner(dst, bx, by)
	}
}

func (v *BoardView) renderTooSmall(dst *core.Screen) {
	w, h := v.boardSize()
	y := v.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorAlert)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", w, boardY+h+1), core.ColorDim)
}

// renderStatus draws whose turn it is, with a piece in their color.
func (v *BoardView) renderStatus(dst *core.Screen) {
	status := v.Status()

	var color core.Color
	switch {
	case v.winner != nil:
		color = core.Color(v.winner.Color())
	case v.next != nil && !v.over:
		color = core.Color(v.next.Color())
	}

	if color == core.ColorDefault {
		dst.DrawTextCentered(statusY, status, core.ColorAlert)
		return
	}

	// "▐██▌ Player red to move"
	line := pieceGlyph + " " + status
	x := (dst.Width() - len([]rune(line))) / 2
	dst.DrawColoredText(x, statusY, pieceGlyph, color)
	dst.DrawText(x+len([]rune(pieceGlyph))+1, statusY, status)
}

// renderHeader draws column numbers and the cursor arrow.
func (v *BoardView) renderHeader(dst *core.Screen, bx, cursor int) {
	for col := 0; col < v.width; col++ {
		cx := bx + col*cellWidth + cellWidth/2

		labelColor := core.ColorDim
		if col == cursor {
			labelColor = core.ColorCursor
		}
		label := strconv.Itoa(col + 1)
		dst.DrawColoredText(cx-len(label)/2, headerY, label, labelColor)

		if col == cursor && !v.over && v.next != nil {
			dst.SetColored(cx, arrowY, arrowGlyph, core.Color(v.next.Color()))
		}
	}
}

// renderGrid draws the frame with box-drawing characters.
func (v *BoardView) renderGrid(dst *core.Screen, bx, by int) {
	for y := 0; y <= v.height; y++ {
		for x := 0; x <= v.width; x++ {
			px := bx + x*cellWidth
			py := by + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == v.width:
				corner = '┐'
			case y == v.height && x == 0:
				corner = '└'
			case y == v.height && x == v.width:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == v.height:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == v.width:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorFrame)

			if x < v.width {
				dst.DrawColoredText(px+1, py, "────", core.ColorFrame)
			}
			if y < v.height {
				dst.SetColored(px, py+1, '│', core.ColorFrame)
			}
		}
	}
}

// renderPieces draws placed pieces and the one currently falling.
func (v *BoardView) renderPieces(dst *core.Screen, bx, by int) {
	for y := range v.grid {
		for x, color := range v.grid[y] {
			if color == core.ColorDefault {
				continue
			}
			if v.fall.active && y == v.fall.row && x == v.fall.col {
				continue
			}
			v.drawPiece(dst, bx, by, y, x, color)
		}
	}

	if v.fall.active {
		v.drawPiece(dst, bx, by, v.fall.y, v.fall.col, v.fall.color)
	}
}

func (v *BoardView) drawPiece(dst *core.Screen, bx, by, row, col int, color core.Color) {
	px := bx + col*cellWidth + 1
	py := by + row*cellHeight + 1
	dst.DrawColoredText(px, py, pieceGlyph, color)
}

// renderBanner draws the end-of-game box over the board.
func (v *BoardView) renderBanner(dst *core.Screen, bx, by int) {
	w, h := v.boardSize()
	centerX, centerY := core.NewRect(bx, by, w, h).Center()

	lines := []string{v.Status(), "R: rematch   N: new players"}

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorAlert)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawColoredText(x, box.Y+1+i, line, core.ColorAlert)
	}

	if v.winner != nil {
		dst.DrawColoredText(centerX-len([]rune(lines[0]))/2, box.Y+1, lines[0], core.Color(v.winner.Color()))
	}
}
