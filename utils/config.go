package utils

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Display settings. Font size is persisted for external renderers; the
// terminal UI applies line spacing only.
type Settings struct {
	FontSize    int     `toml:"font_size"`
	LineSpacing float64 `toml:"line_spacing"`
}

const (
	MinFontSize    = 10
	MaxFontSize    = 20
	MinLineSpacing = 1.0
	MaxLineSpacing = 2.0
)

func DefaultSettings() Settings {
	return Settings{
		FontSize:    12,
		LineSpacing: 1.5,
	}
}

// Clamped returns a copy with both fields forced into their valid ranges.
func (s Settings) Clamped() Settings {
	if s.FontSize < MinFontSize {
		s.FontSize = MinFontSize
	}
	if s.FontSize > MaxFontSize {
		s.FontSize = MaxFontSize
	}
	if s.LineSpacing < MinLineSpacing {
		s.LineSpacing = MinLineSpacing
	}
	if s.LineSpacing > MaxLineSpacing {
		s.LineSpacing = MaxLineSpacing
	}
	return s
}

// ExtraLines maps the line spacing factor to whole blank lines between
// rendered rows: 1.0 -> 0, 1.5 -> 1, 2.0 -> 2.
func (s Settings) ExtraLines() int {
	return int((s.LineSpacing-MinLineSpacing)*2 + 0.5)
}

// LoadSettings reads the settings file. A missing or malformed file
// yields the defaults; out-of-range values are clamped.
func LoadSettings(path string) Settings {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return DefaultSettings()
	}
	return s.Clamped()
}

// SaveSettings writes the settings file, creating the parent directory
// if needed. Persistence is best-effort; the error is returned only so
// the UI can show a status line.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(s.Clamped())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// expandPath replaces a leading "~" with the user home dir.
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DefaultConfigDir is where the settings and progress files live unless
// overridden on the command line.
func DefaultConfigDir() string {
	return expandPath("~/.config/txt_reader")
}
