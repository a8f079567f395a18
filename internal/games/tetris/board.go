package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Board dimensions in cells. Fixed for the lifetime of a session.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is a single board position: empty, or occupied with a color.
type Cell struct {
	Occupied bool
	Color    core.Color
}

// Grid is the board's cell storage, row-major with row 0 at the top.
type Grid [BoardHeight][BoardWidth]Cell

// Board owns the playfield grid and the transient record of rows cleared
// by the most recent lock (used for the line-flash animation).
type Board struct {
	cells     Grid
	flashRows []int
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Reset clears the grid and the flash record.
func (b *Board) Reset() {
	b.cells = Grid{}
	b.flashRows = nil
}

// Cell returns the cell at (x, y). Out-of-range coordinates read as empty.
func (b *Board) Cell(x, y int) Cell {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		return Cell{}
	}
	return b.cells[y][x]
}

// Grid returns a copy of the playfield for snapshots.
func (b *Board) Grid() Grid {
	return b.cells
}

// CanPlace reports whether the piece, shifted by (dx, dy), fits on the
// board: every occupied cell inside [0, width) horizontally, above the
// floor, and not overlapping a filled cell. Cells with y < 0 are legal;
// pieces may extend above the visible playfield.
func (b *Board) CanPlace(p Piece, dx, dy int) bool {
	for x, y := range p.Cells() {
		x += dx
		y += dy
		if x < 0 || x >= BoardWidth || y >= BoardHeight {
			return false
		}
		if y >= 0 && b.cells[y][x].Occupied {
			return false
		}
	}
	return true
}

// Place writes the piece's color into every occupied cell that lies
// inside the visible grid. Cells still above row 0 at lock time are
// silently dropped; that is what makes a top-row game over possible.
func (b *Board) Place(p Piece) {
	for x, y := range p.Cells() {
		if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
			continue
		}
		b.cells[y][x] = Cell{Occupied: true, Color: p.Color}
	}
}

// ClearLines removes every complete row, shifting the rows above it down
// and inserting an empty row at the top for each one removed. The
// pre-removal indices are recorded as the rows to flash; the caller
// clears that record once its animation window elapses. Returns the
// number of rows cleared.
func (b *Board) ClearLines() int {
	var cleared []int
	for y := 0; y < BoardHeight; y++ {
		if b.rowComplete(y) {
			cleared = append(cleared, y)
		}
	}

	for _, row := range cleared {
		for y := row; y > 0; y-- {
			b.cells[y] = b.cells[y-1]
		}
		b.cells[0] = [BoardWidth]Cell{}
	}

	if len(cleared) > 0 {
		b.flashRows = cleared
	}
	return len(cleared)
}

// rowComplete reports whether every cell in the row is occupied.
func (b *Board) rowComplete(y int) bool {
	for x := 0; x < BoardWidth; x++ {
		if !b.cells[y][x].Occupied {
			return false
		}
	}
	return true
}

// FlashRows returns a copy of the row indices cleared by the most recent
// ClearLines, or nil when no flash is pending.
func (b *Board) FlashRows() []int {
	if b.flashRows == nil {
		return nil
	}
	rows := make([]int, len(b.flashRows))
	copy(rows, b.flashRows)
	return rows
}

// ClearFlash drops the pending flash record.
func (b *Board) ClearFlash() {
	b.flashRows = nil
}

// TopRowOccupied reports whether any cell in row 0 is filled -- the
// game-over signal, checked after each lock.
func (b *Board) TopRowOccupied() bool {
	for x := 0; x < BoardWidth; x++ {
		if b.cells[0][x].Occupied {
			return true
		}
	}
	return false
}

// DropOffset returns the maximal number of rows the piece can descend
// from its current position, probing one row at a time. Zero means the
// piece is already resting.
func (b *Board) DropOffset(p Piece) int {
	offset := 0
	for b.CanPlace(p, 0, offset+1) {
		offset++
	}
	return offset
}

// ColumnHeight returns the height of a column: the distance from the
// first occupied cell to the floor, or 0 for an empty column.
func (b *Board) ColumnHeight(x int) int {
	if x < 0 || x >= BoardWidth {
		return 0
	}
	for y := 0; y < BoardHeight; y++ {
		if b.cells[y][x].Occupied {
			return BoardHeight - y
		}
	}
	return 0
}

// HoleCount returns the number of empty cells that have at least one
// occupied cell above them in the same column.
func (b *Board) HoleCount() int {
	holes := 0
	for x := 0; x < BoardWidth; x++ {
		covered := false
		for y := 0; y < BoardHeight; y++ {
			if b.cells[y][x].Occupied {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return holes
}

// AggregateHeight returns the sum of all column heights.
func (b *Board) AggregateHeight() int {
	total := 0
	for x := 0; x < BoardWidth; x++ {
		total += b.ColumnHeight(x)
	}
	return total
}

// Bumpiness returns the sum of absolute height differences between
// adjacent columns.
func (b *Board) Bumpiness() int {
	total := 0
	for x := 0; x < BoardWidth-1; x++ {
		total += core.Abs(b.ColumnHeight(x) - b.ColumnHeight(x+1))
	}
	return total
}
