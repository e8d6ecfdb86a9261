package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in configuration: classic gravity
// shrinking 50ms per level with a 50ms floor, 500ms lock delay with 15
// resets, three preview pieces, ghost on, arrow-key bindings.
func DefaultSettings() Settings {
	gravity := make([]int, MaxStartLevel)
	for i := range gravity {
		ms := 800 - 50*i
		if ms < 50 {
			ms = 50
		}
		gravity[i] = ms
	}
	return Settings{
		Game: GameSettings{
			StartLevel:  1,
			NextPreview: 3,
			Ghost:       true,
		},
		Timing: TimingSettings{
			LockDelayMs:  500,
			LockResetCap: 15,
			GravityMs:    gravity,
		},
		Keys: KeySettings{
			MoveLeft:  []string{"left", "a"},
			MoveRight: []string{"right", "d"},
			RotateCW:  []string{"up", "x", "w"},
			RotateCCW: []string{"z"},
			SoftDrop:  []string{"down", "s"},
			HardDrop:  []string{" "},
			Hold:      []string{"c"},
			Pause:     []string{"p", "esc"},
			Restart:   []string{"r"},
			Quit:      []string{"q", "ctrl+c"},
		},
	}
}

// EmbeddedSettings parses the embedded default YAML. It falls back to the
// hardcoded defaults if the embedded file fails to parse.
func EmbeddedSettings() Settings {
	s := DefaultSettings()
	if err := yaml.Unmarshal(defaultSettingsYAML, &s); err != nil {
		return DefaultSettings()
	}
	s.Normalize()
	return s
}
