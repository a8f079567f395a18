package tetris

// Command is a logical game command, already divorced from physical keys.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdRotate
	// CmdHardDrop is context dependent: hard drop while running, start
	// from the idle screen, restart-and-start after a game over.
	CmdHardDrop
	CmdTogglePause
	CmdRestart
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdSoftDrop:
		return "SoftDrop"
	case CmdRotate:
		return "Rotate"
	case CmdHardDrop:
		return "HardDrop"
	case CmdTogglePause:
		return "TogglePause"
	case CmdRestart:
		return "Restart"
	default:
		return "None"
	}
}

// repeatable reports whether holding the command's key auto-repeats it.
// Only movement commands repeat; rotation and drops fire once per press.
func repeatable(c Command) bool {
	switch c {
	case CmdMoveLeft, CmdMoveRight, CmdSoftDrop:
		return true
	}
	return false
}

// Default repeat timing: a held movement key fires once immediately,
// again after the initial delay, then on the repeat interval.
const (
	DefaultRepeatDelayMs    = 170
	DefaultRepeatIntervalMs = 50
)

// heldKey tracks one logically held command.
type heldKey struct {
	pressedAt  float64 // when the key went down
	nextFireAt float64 // when the next auto-repeat is due
	releaseAt  float64 // auto-release deadline; 0 means held until KeyUp
	repeats    bool    // movement keys auto-repeat; the rest fire once
}

// Mapper turns key-down/key-up edges into game commands and owns the
// press-and-hold repeat timing. It has no clock of its own: callers pass
// a monotonic time in milliseconds, which makes repeat behavior fully
// deterministic under test.
//
// Hosts without key-up events (terminals) can enable auto-release: each
// press then keeps the key held only for a grace window, refreshed by
// the terminal's own key repeat.
type Mapper struct {
	delayMs    float64
	intervalMs float64
	graceMs    float64 // 0 disables auto-release
	held       map[Command]*heldKey
}

// NewMapper creates a mapper with the default repeat timing.
func NewMapper() *Mapper {
	return &Mapper{
		delayMs:    DefaultRepeatDelayMs,
		intervalMs: DefaultRepeatIntervalMs,
		held:       make(map[Command]*heldKey),
	}
}

// SetDelays overrides the initial repeat delay and repeat interval.
func (m *Mapper) SetDelays(delayMs, intervalMs float64) {
	if delayMs > 0 {
		m.delayMs = delayMs
	}
	if intervalMs > 0 {
		m.intervalMs = intervalMs
	}
}

// SetAutoRelease enables hold expiry for hosts without key-up events.
// A held key is released graceMs after its most recent press edge.
func (m *Mapper) SetAutoRelease(graceMs float64) {
	m.graceMs = graceMs
}

// KeyDown records a press edge at the given time. It returns true when
// the press is fresh and the command should fire immediately; a repeated
// down edge for an already-held key only refreshes the hold and must not
// double-fire.
func (m *Mapper) KeyDown(c Command, now float64) bool {
	if c == CmdNone {
		return false
	}

	if k, ok := m.held[c]; ok {
		if m.graceMs > 0 {
			k.releaseAt = now + m.graceMs
		}
		return false
	}

	k := &heldKey{
		pressedAt: now,
		repeats:   repeatable(c),
	}
	if k.repeats {
		k.nextFireAt = now + m.delayMs
	}
	if m.graceMs > 0 {
		k.releaseAt = now + m.graceMs
	}
	m.held[c] = k
	return true
}

// KeyUp releases a held command, stopping its repeats immediately.
func (m *Mapper) KeyUp(c Command) {
	delete(m.held, c)
}

// Poll advances the mapper to the given time and returns the commands
// due from auto-repeat. Expired auto-release holds are dropped without
// firing.
func (m *Mapper) Poll(now float64) []Command {
	var due []Command
	for c, k := range m.held {
		if k.releaseAt > 0 && now >= k.releaseAt {
			delete(m.held, c)
			continue
		}
		if !k.repeats {
			continue
		}
		for now >= k.nextFireAt {
			due = append(due, c)
			k.nextFireAt += m.intervalMs
		}
	}
	return due
}

// Held reports whether the command is currently held.
func (m *Mapper) Held(c Command) bool {
	_, ok := m.held[c]
	return ok
}

// CancelAll drops every held key. Called on pause and on session
// teardown so no repeat fires into a stopped game.
func (m *Mapper) CancelAll() {
	clear(m.held)
}
