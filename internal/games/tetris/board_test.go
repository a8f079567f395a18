package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// fillRow occupies the row, leaving out the listed columns.
func fillRow(b *Board, y int, except ...int) {
	skip := map[int]bool{}
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < BoardWidth; x++ {
		if !skip[x] {
			b.cells[y][x] = Cell{Occupied: true, Color: core.ColorWhite}
		}
	}
}

func TestCanPlaceAtSpawn(t *testing.T) {
	b := NewBoard()
	for pt := PieceType(0); pt < pieceTypeCount; pt++ {
		if !b.CanPlace(NewPiece(pt), 0, 0) {
			t.Errorf("%s: does not fit at spawn on an empty board", pt)
		}
	}
}

func TestCanPlaceBounds(t *testing.T) {
	b := NewBoard()
	p := NewPiece(PieceO) // occupies mask columns 1-2, rows 1-2

	tests := []struct {
		name   string
		x, y   int
		dx, dy int
		want   bool
	}{
		{"flush left", -1, 0, 0, 0, true},
		{"past left", -2, 0, 0, 0, false},
		{"flush right", 7, 0, 0, 0, true},
		{"past right", 8, 0, 0, 0, false},
		{"on floor", 3, 17, 0, 0, true},
		{"past floor", 3, 17, 0, 1, false},
		{"above top", 3, -2, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.X, p.Y = tt.x, tt.y
			if got := b.CanPlace(p, tt.dx, tt.dy); got != tt.want {
				t.Errorf("CanPlace(%d,%d + %d,%d) = %v, want %v",
					tt.x, tt.y, tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestCanPlaceCollision(t *testing.T) {
	b := NewBoard()
	b.cells[10][5] = Cell{Occupied: true}

	p := NewPiece(PieceO)
	p.X, p.Y = 3, 8 // cells at columns 4-5, rows 9-10
	if b.CanPlace(p, 0, 0) {
		t.Error("overlap with an occupied cell should fail")
	}
	if !b.CanPlace(p, -1, 0) {
		t.Error("shifted clear of the occupied cell should fit")
	}
}

func TestPlaceWritesColors(t *testing.T) {
	b := NewBoard()
	p := NewPiece(PieceT)
	p.X, p.Y = 0, 18 // mask rows 0-1 land on board rows 18-19
	b.Place(p)

	for x, y := range p.Cells() {
		c := b.Cell(x, y)
		if !c.Occupied || c.Color != p.Color {
			t.Errorf("cell (%d,%d) = %+v, want occupied with the piece color", x, y, c)
		}
	}
}

func TestPlaceDropsCellsAboveTop(t *testing.T) {
	b := NewBoard()
	p := NewPiece(PieceI)
	p.Y = -4 // every occupied cell above row 0
	b.Place(p)

	if b.Grid() != (Grid{}) {
		t.Error("placing a fully hidden piece should leave the grid empty")
	}
	if b.TopRowOccupied() {
		t.Error("no top-row signal from cells that never reached the grid")
	}
}

func TestClearLinesNone(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19, 4) // one gap
	before := b.Grid()

	if got := b.ClearLines(); got != 0 {
		t.Fatalf("ClearLines = %d, want 0", got)
	}
	if b.Grid() != before {
		t.Error("incomplete rows must not move")
	}
	if b.FlashRows() != nil {
		t.Error("no flash pending without a clear")
	}
}

func TestClearLinesSingle(t *testing.T) {
	b := NewBoard()
	b.cells[18][3] = Cell{Occupied: true, Color: core.ColorRed}
	fillRow(b, 19)

	if got := b.ClearLines(); got != 1 {
		t.Fatalf("ClearLines = %d, want 1", got)
	}
	// The survivor from row 18 shifts down into row 19.
	if c := b.Cell(3, 19); !c.Occupied || c.Color != core.ColorRed {
		t.Errorf("cell (3,19) = %+v, want the shifted survivor", c)
	}
	if b.Cell(3, 18).Occupied {
		t.Error("row 18 should be empty after the shift")
	}

	flash := b.FlashRows()
	if len(flash) != 1 || flash[0] != 19 {
		t.Errorf("FlashRows = %v, want [19]", flash)
	}
	b.ClearFlash()
	if b.FlashRows() != nil {
		t.Error("ClearFlash should drop the record")
	}
}

func TestClearLinesMultiple(t *testing.T) {
	b := NewBoard()
	b.cells[9][0] = Cell{Occupied: true, Color: core.ColorBlue}
	fillRow(b, 10)
	b.cells[15][7] = Cell{Occupied: true, Color: core.ColorGreen}
	fillRow(b, 18)
	fillRow(b, 19)

	if got := b.ClearLines(); got != 3 {
		t.Fatalf("ClearLines = %d, want 3", got)
	}
	flash := b.FlashRows()
	if len(flash) != 3 || flash[0] != 10 || flash[1] != 18 || flash[2] != 19 {
		t.Errorf("FlashRows = %v, want [10 18 19]", flash)
	}

	// Row 9's survivor drops by three cleared rows below it, row 15's
	// by the two below it.
	if !b.Cell(0, 12).Occupied || b.Cell(0, 9).Occupied {
		t.Error("row 9 survivor should land on row 12")
	}
	if !b.Cell(7, 17).Occupied || b.Cell(7, 15).Occupied {
		t.Error("row 15 survivor should land on row 17")
	}

	occupied := 0
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if b.cells[y][x].Occupied {
				occupied++
			}
		}
	}
	if occupied != 2 {
		t.Errorf("%d occupied cells remain, want 2", occupied)
	}
}

func TestTopRowOccupied(t *testing.T) {
	b := NewBoard()
	if b.TopRowOccupied() {
		t.Error("empty board reports a top-row signal")
	}
	b.cells[0][9] = Cell{Occupied: true}
	if !b.TopRowOccupied() {
		t.Error("occupied cell in row 0 not detected")
	}
}

func TestDropOffset(t *testing.T) {
	b := NewBoard()

	p := NewPiece(PieceI) // bottom row of cells at y = 0 when spawned
	if got := b.DropOffset(p); got != 19 {
		t.Errorf("empty board: DropOffset = %d, want 19", got)
	}

	fillRow(b, 19)
	if got := b.DropOffset(p); got != 18 {
		t.Errorf("one stacked row: DropOffset = %d, want 18", got)
	}

	p.Y = 16 // cells on row 17, one row of air above the stack
	if got := b.DropOffset(p); got != 1 {
		t.Errorf("one row of clearance: DropOffset = %d, want 1", got)
	}
}

func TestHeuristics(t *testing.T) {
	b := NewBoard()

	// Column 0: height 3 with one buried hole. Column 1: height 1.
	b.cells[17][0] = Cell{Occupied: true}
	b.cells[19][0] = Cell{Occupied: true}
	b.cells[19][1] = Cell{Occupied: true}

	if got := b.ColumnHeight(0); got != 3 {
		t.Errorf("ColumnHeight(0) = %d, want 3", got)
	}
	if got := b.ColumnHeight(1); got != 1 {
		t.Errorf("ColumnHeight(1) = %d, want 1", got)
	}
	if got := b.ColumnHeight(2); got != 0 {
		t.Errorf("ColumnHeight(2) = %d, want 0", got)
	}
	if got := b.HoleCount(); got != 1 {
		t.Errorf("HoleCount = %d, want 1", got)
	}
	if got := b.AggregateHeight(); got != 4 {
		t.Errorf("AggregateHeight = %d, want 4", got)
	}
	// |3-1| + |1-0| across the first three columns, flat after that.
	if got := b.Bumpiness(); got != 3 {
		t.Errorf("Bumpiness = %d, want 3", got)
	}
}

func TestBoardReset(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19)
	b.ClearLines()
	b.Reset()

	if b.Grid() != (Grid{}) {
		t.Error("Reset should empty the grid")
	}
	if b.FlashRows() != nil {
		t.Error("Reset should drop the flash record")
	}
}
