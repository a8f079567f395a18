package tetris

// Snapshot captures the complete game state for renderers, determinism
// tests and replay. Everything is copied by value; mutating a snapshot
// never reaches back into the live game.
type Snapshot struct {
	Tick  uint64
	Phase Phase

	Score int
	Lines int
	Level int
	Combo int

	Grid      Grid
	Current   Piece
	Next      Piece
	GhostY    int   // landing row of the current piece (hard-drop target)
	FlashRows []int // rows cleared by the most recent lock, if flashing

	DropIntervalMs float64
	LockMsLeft     float64
	FlashMsLeft    float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:           g.tick,
		Phase:          g.phase,
		Score:          g.score,
		Lines:          g.lines,
		Level:          g.level,
		Combo:          g.combo,
		Grid:           g.board.Grid(),
		Current:        g.current,
		Next:           g.next,
		GhostY:         g.current.Y + g.board.DropOffset(g.current),
		FlashRows:      g.board.FlashRows(),
		DropIntervalMs: g.dropEveryMs,
		LockMsLeft:     g.lockTimerMs,
		FlashMsLeft:    g.flashTimerMs,
	}
}
