package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Phase is the controller's top-level state.
type Phase int

const (
	// PhaseIdle is the pre-start display state: the board and pieces are
	// ready, nothing moves until the player starts.
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	// PhaseGameOver is terminal; only a restart leaves it.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// lineScores is the base award for clearing n lines at once,
// multiplied by the current level.
var lineScores = [5]int{0, 40, 100, 300, 1200}

// Package-level selections applied at Reset, set by the CLI before the
// game is created (same pattern the platform uses for every game knob).
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the YAML config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-10). 0 means level 1.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// Game is the Tetris controller: it owns the board, the current and next
// pieces, scoring, leveling and all gameplay timers, and advances them
// one fixed tick at a time.
type Game struct {
	cfg    config.TetrisConfig
	rng    *rand.Rand
	mapper *Mapper
	board  *Board

	current Piece
	next    Piece

	phase      Phase
	score      int
	lines      int
	level      int
	startLevel int
	combo      int

	// Timers, all in milliseconds.
	elapsedMs    float64 // running-time reference for the input mapper
	tickMs       float64 // duration of one simulation tick
	dropTimerMs  float64 // gravity accumulator
	dropEveryMs  float64 // current drop interval from the level
	lockTimerMs  float64 // countdown while the piece rests
	flashTimerMs float64 // countdown of the line-flash window
	locking      bool

	tick    uint64
	screenW int
	screenH int
}

// New creates a Tetris game. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes or restarts the whole session: board, score, lines,
// level, combo and every timer, then spawns a fresh current and next
// piece. The game comes up in the idle phase and waits for Start.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tc, err := config.LoadTetris(configPath)
	if err != nil {
		tc = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&tc, config.DifficultyPreset(difficultyPreset))
	g.cfg = tc

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickMs = 1000.0 / float64(tickRate)

	// Highest wins between the config file, the runtime config and the
	// CLI selection; all default to level 1.
	g.startLevel = core.Max(1, core.Max(tc.Game.StartLevel, core.Max(cfg.StartLevel, selectedStartLevel)))
	selectedStartLevel = 0 // One-shot, like every pre-created knob.

	g.mapper = NewMapper()
	g.mapper.SetDelays(tc.Input.RepeatDelayMs, tc.Input.RepeatIntervalMs)
	g.mapper.SetAutoRelease(tc.Input.ReleaseGraceMs)

	if g.board == nil {
		g.board = NewBoard()
	}
	g.restart()
}

// restart resets the session state without touching platform config.
func (g *Game) restart() {
	g.board.Reset()
	g.score = 0
	g.lines = 0
	g.combo = 0
	g.level = g.startLevel
	g.dropEveryMs = dropIntervalMs(g.level)
	g.dropTimerMs = 0
	g.lockTimerMs = 0
	g.flashTimerMs = 0
	g.locking = false
	g.elapsedMs = 0
	g.tick = 0
	g.mapper.CancelAll()

	g.current = NewPiece(RandomType(g.rng))
	g.next = NewPiece(RandomType(g.rng))
	g.phase = PhaseIdle
}

// Start begins play from the idle screen, or restarts first after a game
// over. It re-anchors the timing reference so no phantom time is counted.
func (g *Game) Start() {
	switch g.phase {
	case PhaseIdle:
		g.phase = PhaseRunning
	case PhaseGameOver:
		g.restart()
		g.phase = PhaseRunning
	}
}

// TogglePause flips the pause state. No-op outside of play. Held keys
// are dropped on pause so no repeat fires into the frozen game.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
		g.mapper.CancelAll()
	case PhasePaused:
		g.phase = PhaseRunning
	}
}

// Restart resets the session from any state back to the idle screen.
func (g *Game) Restart() {
	g.restart()
}

// Step advances the simulation by one fixed tick: input first, then the
// time-driven update (line flash, lock countdown, gravity -- in that
// order).
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	now := g.elapsedMs

	for _, cmd := range g.commandsFor(in, now) {
		g.apply(cmd)
	}

	if g.phase == PhaseRunning {
		g.advance(g.tickMs)
		g.elapsedMs += g.tickMs
	}

	return core.StepResult{State: g.State()}
}

// commandsFor maps the frame's actions to commands through the press/
// repeat mapper, then appends any auto-repeats that came due. The
// binding order is fixed so simultaneous presses resolve the same way
// on every run.
func (g *Game) commandsFor(in core.InputFrame, now float64) []Command {
	var cmds []Command
	for _, b := range actionBindings {
		if in.Has(b.action) && g.mapper.KeyDown(b.cmd, now) {
			cmds = append(cmds, b.cmd)
		}
	}
	return append(cmds, g.mapper.Poll(now)...)
}

// actionBindings maps platform actions to game commands.
var actionBindings = []struct {
	action core.Action
	cmd    Command
}{
	{core.ActionLeft, CmdMoveLeft},
	{core.ActionRight, CmdMoveRight},
	{core.ActionDown, CmdSoftDrop},
	{core.ActionRotate, CmdRotate},
	{core.ActionDrop, CmdHardDrop},
	{core.ActionPause, CmdTogglePause},
	{core.ActionRestart, CmdRestart},
}

// apply executes one command against the current phase. Outside of
// running play only the start/restart family is honored.
func (g *Game) apply(cmd Command) {
	switch cmd {
	case CmdTogglePause:
		g.TogglePause()
		return
	case CmdRestart:
		g.Restart()
		return
	case CmdHardDrop:
		if g.phase != PhaseRunning {
			g.Start()
			return
		}
		g.hardDrop()
		return
	}

	if g.phase != PhaseRunning {
		return
	}

	switch cmd {
	case CmdMoveLeft:
		g.move(-1, 0)
	case CmdMoveRight:
		g.move(1, 0)
	case CmdSoftDrop:
		g.softDrop()
	case CmdRotate:
		g.rotate()
	}
}

// advance runs one tick's worth of simulated time. Order matters: an
// active line flash suspends locking and gravity; an active lock
// countdown suspends gravity.
func (g *Game) advance(dt float64) {
	if g.flashTimerMs > 0 {
		g.flashTimerMs -= dt
		if g.flashTimerMs <= 0 {
			g.flashTimerMs = 0
			g.board.ClearFlash()
		}
		return
	}

	if g.locking {
		g.lockTimerMs -= dt
		if g.lockTimerMs <= 0 {
			g.lockPiece()
		}
		return
	}

	g.dropTimerMs += dt
	if g.dropTimerMs >= g.dropEveryMs {
		g.dropTimerMs = 0
		g.move(0, 1)
	}
}

// move attempts to shift the current piece by (dx, dy). A successful
// lateral move cancels any lock countdown, granting a fresh lock window.
// Moving onto or against the stack starts the lock countdown.
func (g *Game) move(dx, dy int) bool {
	if !g.board.CanPlace(g.current, dx, dy) {
		if dy > 0 {
			g.enterLocking()
		}
		return false
	}

	g.current.X += dx
	g.current.Y += dy

	if dx != 0 {
		g.cancelLocking()
	}
	if dy > 0 && !g.board.CanPlace(g.current, 0, 1) {
		g.enterLocking()
	}
	return true
}

// rotate turns the current piece clockwise, trying it in place first and
// then probing the SRS kick offsets for this transition in order. A
// successful rotation resets the lock countdown; a failed one leaves the
// piece untouched.
func (g *Game) rotate() bool {
	rotated := g.current
	rotated.RotateCW()

	if g.board.CanPlace(rotated, 0, 0) {
		g.commitRotation(rotated)
		return true
	}

	for _, off := range KickOffsets(g.current.Type, g.current.Rotation, rotated.Rotation) {
		if g.board.CanPlace(rotated, off.DX, off.DY) {
			rotated.X += off.DX
			rotated.Y += off.DY
			g.commitRotation(rotated)
			return true
		}
	}
	return false
}

func (g *Game) commitRotation(rotated Piece) {
	g.current = rotated
	g.cancelLocking()
	if !g.board.CanPlace(g.current, 0, 1) {
		g.enterLocking()
	}
}

// softDrop moves the piece down one row, awarding a point on success.
func (g *Game) softDrop() {
	if g.move(0, 1) {
		g.score++
	}
}

// hardDrop teleports the piece to its landing row, awards two points per
// row descended, and locks immediately without waiting for the countdown.
func (g *Game) hardDrop() {
	offset := g.board.DropOffset(g.current)
	g.current.Y += offset
	g.score += 2 * offset
	g.lockPiece()
}

// enterLocking starts the lock-delay countdown if it is not already
// running. An in-progress countdown keeps its remaining time.
func (g *Game) enterLocking() {
	if g.locking {
		return
	}
	g.locking = true
	g.lockTimerMs = g.cfg.Timing.LockDelayMs
}

func (g *Game) cancelLocking() {
	g.locking = false
	g.lockTimerMs = 0
}

// lockPiece fixes the current piece to the board and runs the full lock
// sequence: clear lines, update score/lines/level/combo (or reset the
// combo), open the flash window, promote the next piece, and detect the
// game over.
func (g *Game) lockPiece() {
	g.board.Place(g.current)

	if cleared := g.board.ClearLines(); cleared > 0 {
		g.applyClear(cleared)
	} else {
		g.combo = 0
	}

	g.cancelLocking()
	g.dropTimerMs = 0

	g.current = g.next
	g.next = NewPiece(RandomType(g.rng))

	if g.board.TopRowOccupied() || !g.board.CanPlace(g.current, 0, 0) {
		g.gameOver()
	}
}

// applyClear scores a clearing lock: base award times level, plus the
// combo bonus for back-to-back clears, then leveling and a fresh flash
// window.
func (g *Game) applyClear(cleared int) {
	g.lines += cleared
	g.combo++

	award := lineScores[core.Clamp(cleared, 1, 4)] * g.level
	if g.combo > 1 {
		award += 50 * g.combo * g.level
	}
	g.score += award

	if lvl := core.Max(g.startLevel, g.lines/10+1); lvl > g.level {
		g.level = lvl
		g.dropEveryMs = dropIntervalMs(g.level)
	}

	g.flashTimerMs = g.cfg.Timing.LineFlashMs
}

// gameOver ends the session. Only Restart (or Start, which routes
// through it) leaves this phase.
func (g *Game) gameOver() {
	g.phase = PhaseGameOver
	g.mapper.CancelAll()
}

// dropIntervalMs converts the classic frames-per-row gravity table to
// milliseconds: max(1, 48 - (level-1)*5) frames at 60 fps.
func dropIntervalMs(level int) float64 {
	frames := core.Max(1, 48-(level-1)*5)
	return float64(frames) / 60.0 * 1000.0
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}
