package config

// ApplyTetrisPreset adjusts gravity and lock delay for a difficulty preset.
// Normal keeps the configured values.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	t := &cfg.Timing
	switch preset {
	case DifficultyEasy:
		t.FallBase += 10
		t.LockDelay += t.LockDelay / 2
	case DifficultyHard:
		// Keep the level 10 interval at or above the floor.
		t.FallBase = max(t.FallBase-10, t.FallMin+t.FallStep*10)
		t.LockDelay = max(t.LockDelay*2/3, 1)
		t.MoveInterval = max(t.MoveInterval-2, 1)
	}
}
