package tetris

// Offset is a wall-kick candidate nudge in grid units.
type Offset struct {
	DX, DY int
}

// transition keys a directed rotation change, e.g. {0, 1} for 0->R.
type transition struct {
	from, to int
}

// Super Rotation System kick tables. Offsets are applied directly in
// grid coordinates (y grows downward). The controller tries the rotated
// piece in place first, so (0, 0) is not listed here.
//
// J, L, S, T and Z share one table; I has its own. O never needs a kick.
var jlstzKicks = map[transition][]Offset{
	{0, 1}: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{1, 0}: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{1, 2}: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{2, 1}: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{2, 3}: {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{3, 2}: {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{3, 0}: {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{0, 3}: {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

var iKicks = map[transition][]Offset{
	{0, 1}: {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{1, 0}: {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{1, 2}: {{-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{2, 1}: {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{2, 3}: {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{3, 2}: {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{3, 0}: {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{0, 3}: {{-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

var noKick = []Offset{{0, 0}}

// KickOffsets returns the ordered candidate nudges for rotating the given
// piece type from one rotation state to another. The O piece gets a
// single (0, 0) entry, as does any transition missing from the tables.
func KickOffsets(t PieceType, from, to int) []Offset {
	var table map[transition][]Offset
	switch t {
	case PieceI:
		table = iKicks
	case PieceO:
		return noKick
	default:
		table = jlstzKicks
	}

	if offsets, ok := table[transition{from: from, to: to}]; ok {
		return offsets
	}
	return noKick
}
