package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
// These values match the embedded defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			LockDelayMs: 500,
			LineFlashMs: 300,
		},
		Input: InputConfig{
			RepeatDelayMs:    170,
			RepeatIntervalMs: 50,
			ReleaseGraceMs:   150,
		},
		Game: GameConfig{
			StartLevel: 1,
		},
	}
}
