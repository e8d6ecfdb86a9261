package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads settings.
// Search order: customPath -> ~/.tetrion/settings.yaml -> ./settings.yaml
// -> embedded default. User files may be sparse; missing keys keep their
// default values.
func Load(customPath string) (Settings, error) {
	if customPath != "" {
		s := DefaultSettings()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return s, fmt.Errorf("failed to read settings %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("failed to parse settings %s: %w", customPath, err)
		}
		s.Normalize()
		return s, nil
	}

	if userPath := UserSettingsPath(); userPath != "" {
		if s, ok := tryLoad(userPath); ok {
			return s, nil
		}
	}

	if s, ok := tryLoad("settings.yaml"); ok {
		return s, nil
	}

	return EmbeddedSettings(), nil
}

func tryLoad(path string) (Settings, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, false
	}
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, false
	}
	s.Normalize()
	return s, true
}

// Save writes settings to the given path, creating parent directories as
// needed. An empty path targets the user settings file.
func Save(s Settings, path string) error {
	if path == "" {
		path = UserSettingsPath()
	}
	if path == "" {
		return fmt.Errorf("failed to resolve settings path: no home directory")
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}

// UserSettingsPath returns ~/.tetrion/settings.yaml, or empty if the home
// directory is unavailable.
func UserSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetrion", "settings.yaml")
}
