package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Game.StartLevel != 1 {
		t.Errorf("start level = %d, want 1", s.Game.StartLevel)
	}
	if len(s.Timing.GravityMs) != MaxStartLevel {
		t.Errorf("gravity table has %d entries, want %d", len(s.Timing.GravityMs), MaxStartLevel)
	}
	if s.Timing.GravityMs[0] != 800 {
		t.Errorf("level 1 gravity = %dms, want 800", s.Timing.GravityMs[0])
	}
	if s.Timing.GravityMs[MaxStartLevel-1] != 100 {
		t.Errorf("level %d gravity = %dms, want 100", MaxStartLevel, s.Timing.GravityMs[MaxStartLevel-1])
	}
	for i := 1; i < len(s.Timing.GravityMs); i++ {
		if s.Timing.GravityMs[i] > s.Timing.GravityMs[i-1] {
			t.Errorf("gravity table not monotonic at level %d", i+1)
		}
	}
}

func TestEmbeddedSettingsMatchDefaults(t *testing.T) {
	embedded := EmbeddedSettings()
	def := DefaultSettings()

	if embedded.Game != def.Game {
		t.Errorf("embedded game settings %+v differ from defaults %+v", embedded.Game, def.Game)
	}
	if embedded.Timing.LockDelayMs != def.Timing.LockDelayMs ||
		embedded.Timing.LockResetCap != def.Timing.LockResetCap {
		t.Errorf("embedded timing %+v differs from defaults %+v", embedded.Timing, def.Timing)
	}
}

func TestNormalizeFillsBadValues(t *testing.T) {
	s := Settings{}
	s.Game.StartLevel = 99
	s.Timing.LockDelayMs = -5

	s.Normalize()

	if s.Game.StartLevel != 1 {
		t.Errorf("start level = %d after normalize, want 1", s.Game.StartLevel)
	}
	if s.Timing.LockDelayMs != 500 {
		t.Errorf("lock delay = %d after normalize, want 500", s.Timing.LockDelayMs)
	}
	if len(s.Keys.MoveLeft) == 0 {
		t.Error("empty binding not filled")
	}
}

func TestLoadSparseFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	sparse := "game:\n  start_level: 7\n"
	if err := os.WriteFile(path, []byte(sparse), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Game.StartLevel != 7 {
		t.Errorf("start level = %d, want 7", s.Game.StartLevel)
	}
	if !s.Game.Ghost {
		t.Error("ghost default lost on sparse load")
	}
	if s.Timing.LockDelayMs != 500 {
		t.Errorf("lock delay = %d, want default 500", s.Timing.LockDelayMs)
	}
}

func TestLoadMissingCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing explicit settings file did not error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	s := DefaultSettings()
	s.Game.StartLevel = 4
	s.Keys.Hold = []string{"v"}

	if err := Save(s, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Game.StartLevel != 4 {
		t.Errorf("start level = %d after round trip, want 4", loaded.Game.StartLevel)
	}
	if len(loaded.Keys.Hold) != 1 || loaded.Keys.Hold[0] != "v" {
		t.Errorf("hold binding = %v after round trip, want [v]", loaded.Keys.Hold)
	}
}
