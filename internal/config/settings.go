// Package config provides YAML-based settings loading and saving for the
// game: rule tuning, timing and key bindings.
package config

// Settings contains every user-adjustable knob.
type Settings struct {
	Game   GameSettings   `yaml:"game"`
	Timing TimingSettings `yaml:"timing"`
	Keys   KeySettings    `yaml:"keys"`
}

// GameSettings covers rule options.
type GameSettings struct {
	StartLevel  int  `yaml:"start_level"`
	NextPreview int  `yaml:"next_preview"`
	Ghost       bool `yaml:"ghost"`
}

// TimingSettings covers the clocks. GravityMs holds the fall interval per
// level, first entry for level 1; levels past the end reuse the last entry.
type TimingSettings struct {
	LockDelayMs  int   `yaml:"lock_delay_ms"`
	LockResetCap int   `yaml:"lock_reset_cap"`
	GravityMs    []int `yaml:"gravity_ms"`
}

// KeySettings maps each action to one or more key names as Bubble Tea
// reports them ("left", "a", "space", ...).
type KeySettings struct {
	MoveLeft  []string `yaml:"move_left"`
	MoveRight []string `yaml:"move_right"`
	RotateCW  []string `yaml:"rotate_cw"`
	RotateCCW []string `yaml:"rotate_ccw"`
	SoftDrop  []string `yaml:"soft_drop"`
	HardDrop  []string `yaml:"hard_drop"`
	Hold      []string `yaml:"hold"`
	Pause     []string `yaml:"pause"`
	Restart   []string `yaml:"restart"`
	Quit      []string `yaml:"quit"`
}

// Normalize fills missing or out-of-range fields from the defaults so a
// sparse user file still yields a playable configuration.
func (s *Settings) Normalize() {
	def := DefaultSettings()

	if s.Game.StartLevel < 1 || s.Game.StartLevel > MaxStartLevel {
		s.Game.StartLevel = def.Game.StartLevel
	}
	if s.Game.NextPreview < 1 {
		s.Game.NextPreview = def.Game.NextPreview
	}
	if s.Timing.LockDelayMs <= 0 {
		s.Timing.LockDelayMs = def.Timing.LockDelayMs
	}
	if s.Timing.LockResetCap <= 0 {
		s.Timing.LockResetCap = def.Timing.LockResetCap
	}
	if len(s.Timing.GravityMs) == 0 {
		s.Timing.GravityMs = def.Timing.GravityMs
	}

	fill := func(dst *[]string, fallback []string) {
		if len(*dst) == 0 {
			*dst = fallback
		}
	}
	fill(&s.Keys.MoveLeft, def.Keys.MoveLeft)
	fill(&s.Keys.MoveRight, def.Keys.MoveRight)
	fill(&s.Keys.RotateCW, def.Keys.RotateCW)
	fill(&s.Keys.RotateCCW, def.Keys.RotateCCW)
	fill(&s.Keys.SoftDrop, def.Keys.SoftDrop)
	fill(&s.Keys.HardDrop, def.Keys.HardDrop)
	fill(&s.Keys.Hold, def.Keys.Hold)
	fill(&s.Keys.Pause, def.Keys.Pause)
	fill(&s.Keys.Restart, def.Keys.Restart)
	fill(&s.Keys.Quit, def.Keys.Quit)
}

// MaxStartLevel caps the level-select menu.
const MaxStartLevel = 15
