// Package prefs persists the per-user display preferences of cadence.
// They live in ~/.config/cadence/prefs.toml and survive restarts.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Theme names understood by the UI.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

const defaultPrefsPath = "~/.config/cadence/prefs.toml"

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
}

// Default returns the preferences used before anything was saved.
func Default() Prefs {
	return Prefs{Theme: ThemeDark}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// NormalizeTheme maps any stored value onto a known theme. Unknown values
// become dark.
func NormalizeTheme(name string) string {
	if strings.EqualFold(strings.TrimSpace(name), ThemeLight) {
		return ThemeLight
	}
	return ThemeDark
}

// OtherTheme returns the theme a toggle switches to.
func OtherTheme(name string) string {
	if NormalizeTheme(name) == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Load reads preferences from path. A missing, unreadable or malformed file
// yields the defaults; preferences are never worth failing startup over.
func Load(path string) (Prefs, error) {
	prefs := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs, nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil
	}

	var stored Prefs
	if err := toml.Unmarshal(data, &stored); err != nil {
		return prefs, nil
	}
	prefs.Theme = NormalizeTheme(stored.Theme)
	return prefs, nil
}

// Save writes preferences to path, creating parent directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	p.Theme = NormalizeTheme(p.Theme)
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
