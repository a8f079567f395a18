// Package tetris implements a falling-block puzzle game: a 10x20 board,
// seven tetromino pieces with SRS wall kicks, line clears, combo scoring
// and level-based gravity. The simulation is pure logic driven by fixed
// ticks; the platform layer owns keys, timing sources and the terminal.
package tetris

import (
	"iter"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// PieceType identifies one of the seven tetromino kinds.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	pieceTypeCount = 7
)

// String returns the canonical one-letter name of the piece type.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

// maskSize is the side of the square occupancy mask every piece lives in.
const maskSize = 4

// Mask is a 4x4 occupancy grid in piece-local coordinates, row-major,
// row 0 at the top.
type Mask [maskSize][maskSize]bool

// spawnMasks holds the rotation-0 shape of each piece type.
// The O piece sits in the mask center so that the 4x4 clockwise rotation
// maps it onto itself; the I piece uses its classic full second row.
var spawnMasks = [pieceTypeCount]Mask{
	PieceI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	PieceO: {
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	PieceT: {
		{false, true, false, false},
		{true, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	PieceS: {
		{false, true, true, false},
		{true, true, false, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	PieceZ: {
		{true, true, false, false},
		{false, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	PieceJ: {
		{true, false, false, false},
		{true, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	PieceL: {
		{false, false, true, false},
		{true, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
	},
}

// pieceColors assigns each tetromino its traditional color.
var pieceColors = [pieceTypeCount]core.Color{
	PieceI: core.ColorBrightCyan,
	PieceO: core.ColorBrightYellow,
	PieceT: core.ColorBrightMagenta,
	PieceS: core.ColorBrightGreen,
	PieceZ: core.ColorBrightRed,
	PieceJ: core.ColorBrightBlue,
	PieceL: core.ColorOrange,
}

// Spawn position shared by all piece types: horizontally centered, with
// the top mask row above the visible board (negative y is legal there).
const (
	spawnX = 3
	spawnY = -1
)

// Piece is a tetromino in play: its type, occupancy mask, color, origin
// in grid units and rotation state. Piece is a value type; assignment
// copies the mask, so ghost and preview copies never alias the original.
type Piece struct {
	Type     PieceType
	Mask     Mask
	Color    core.Color
	X, Y     int
	Rotation int // 0..3, clockwise quarter turns from spawn
}

// NewPiece creates a piece of the given type at its spawn offset,
// rotation 0.
func NewPiece(t PieceType) Piece {
	return Piece{
		Type:  t,
		Mask:  spawnMasks[t],
		Color: pieceColors[t],
		X:     spawnX,
		Y:     spawnY,
	}
}

// RandomType draws a piece type uniformly at random. Selection is
// bag-less on purpose: every draw is independent, droughts and floods
// included.
func RandomType(rng *rand.Rand) PieceType {
	return PieceType(rng.Intn(pieceTypeCount))
}

// RotateCW turns the piece 90 degrees clockwise in place:
// rotated[x][N-1-y] = mask[y][x]. The rotation state advances mod 4.
// The O piece maps onto itself under this rotation.
func (p *Piece) RotateCW() {
	var rotated Mask
	for y := 0; y < maskSize; y++ {
		for x := 0; x < maskSize; x++ {
			rotated[x][maskSize-1-y] = p.Mask[y][x]
		}
	}
	p.Mask = rotated
	p.Rotation = (p.Rotation + 1) % 4
}

// Cells returns a lazy, restartable sequence of the absolute (x, y) grid
// coordinates covered by the piece at its current origin.
func (p Piece) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := 0; y < maskSize; y++ {
			for x := 0; x < maskSize; x++ {
				if p.Mask[y][x] && !yield(p.X+x, p.Y+y) {
					return
				}
			}
		}
	}
}

// BoundingBox returns the minimal rectangle, in piece-local coordinates,
// that covers all occupied mask cells. ok is false for an empty mask,
// which does not occur for valid pieces.
func (p Piece) BoundingBox() (box core.Rect, ok bool) {
	minX, minY := maskSize, maskSize
	maxX, maxY := -1, -1
	for y := 0; y < maskSize; y++ {
		for x := 0; x < maskSize; x++ {
			if !p.Mask[y][x] {
				continue
			}
			minX = core.Min(minX, x)
			minY = core.Min(minY, y)
			maxX = core.Max(maxX, x)
			maxY = core.Max(maxY, y)
		}
	}
	if maxX < 0 {
		return core.Rect{}, false
	}
	return core.NewRect(minX, minY, maxX-minX+1, maxY-minY+1), true
}
