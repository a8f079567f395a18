// Package config provides YAML-based game configuration loading and
// difficulty presets for the platform.
package config

// TetrisConfig contains all tunable parameters for the Tetris game.
// Board dimensions are intentionally not configurable; the simulation
// assumes a fixed 10x20 grid for the lifetime of a session.
type TetrisConfig struct {
	Timing TimingConfig `yaml:"timing"`
	Input  InputConfig  `yaml:"input"`
	Game   GameConfig   `yaml:"game"`
}

// TimingConfig defines the gameplay timers, in milliseconds.
type TimingConfig struct {
	// LockDelayMs is the grace period after a piece rests before it is
	// fixed to the board. Any successful shift or rotation restarts it.
	LockDelayMs float64 `yaml:"lock_delay_ms"`

	// LineFlashMs is the duration of the cleared-line flash, during
	// which gravity and locking are suspended.
	LineFlashMs float64 `yaml:"line_flash_ms"`
}

// InputConfig defines the key auto-repeat behavior, in milliseconds.
type InputConfig struct {
	// RepeatDelayMs is how long a movement key must be held before it
	// starts repeating.
	RepeatDelayMs float64 `yaml:"repeat_delay_ms"`

	// RepeatIntervalMs is the cadence of repeats once they start.
	RepeatIntervalMs float64 `yaml:"repeat_interval_ms"`

	// ReleaseGraceMs releases a held key this long after its last press
	// edge. Terminals deliver no key-up events, so the terminal's own
	// repeat keeps a genuinely held key alive. 0 disables auto-release.
	ReleaseGraceMs float64 `yaml:"release_grace_ms"`
}

// GameConfig defines session-level gameplay options.
type GameConfig struct {
	// StartLevel is the level a new session begins at (1-10).
	StartLevel int `yaml:"start_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// StartLevelForPreset maps a difficulty preset to a starting level.
// Higher levels mean faster gravity from the first piece.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 4
	case DifficultyHard:
		return 7
	default:
		return 1
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Game.StartLevel = StartLevelForPreset(preset)
}
