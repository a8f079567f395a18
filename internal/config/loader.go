package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the Tetris configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml ->
// ./configs/tetris.yaml -> embedded default.
func LoadTetris(customPath string) (TetrisConfig, error) {
	var cfg TetrisConfig

	// An explicit path must load cleanly or the caller hears about it.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		fillTetrisDefaults(&cfg)
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				fillTetrisDefaults(&cfg)
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tetris.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			fillTetrisDefaults(&cfg)
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	fillTetrisDefaults(&cfg)
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// fillTetrisDefaults backfills zero-valued fields so a partial YAML file
// never produces a game with no lock delay or a zero repeat interval.
func fillTetrisDefaults(cfg *TetrisConfig) {
	def := DefaultTetrisConfig()
	if cfg.Timing.LockDelayMs <= 0 {
		cfg.Timing.LockDelayMs = def.Timing.LockDelayMs
	}
	if cfg.Timing.LineFlashMs <= 0 {
		cfg.Timing.LineFlashMs = def.Timing.LineFlashMs
	}
	if cfg.Input.RepeatDelayMs <= 0 {
		cfg.Input.RepeatDelayMs = def.Input.RepeatDelayMs
	}
	if cfg.Input.RepeatIntervalMs <= 0 {
		cfg.Input.RepeatIntervalMs = def.Input.RepeatIntervalMs
	}
	if cfg.Input.ReleaseGraceMs < 0 {
		cfg.Input.ReleaseGraceMs = def.Input.ReleaseGraceMs
	}
	if cfg.Game.StartLevel <= 0 {
		cfg.Game.StartLevel = def.Game.StartLevel
	}
}
