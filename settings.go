package sapling

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultWidth      = 480
	defaultHeight     = 360
	defaultBackground = "#ccc"
)

// Resolution is the logical screen size in pixels.
type Resolution struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Settings describes a game: which scene to load first, screen size and
// background, and loop tuning.
type Settings struct {
	MainScene       string     `yaml:"main_scene" json:"main_scene"`
	Title           string     `yaml:"title" json:"title"`
	Description     string     `yaml:"description" json:"description"`
	Resolution      Resolution `yaml:"resolution" json:"resolution"`
	BackgroundColor string     `yaml:"background_color" json:"background_color"`
	TPS             int        `yaml:"tps" json:"tps"`
	Debug           bool       `yaml:"debug" json:"debug"`
	LogLevel        string     `yaml:"log_level" json:"log_level"`
}

// DefaultSettings returns the settings used when a field is not specified.
func DefaultSettings() Settings {
	return Settings{
		Title:           "sapling",
		Resolution:      Resolution{Width: defaultWidth, Height: defaultHeight},
		BackgroundColor: defaultBackground,
		TPS:             DefaultTPS,
		LogLevel:        "info",
	}
}

// LoadSettings reads a YAML or JSON settings file, chosen by extension.
// Missing fields keep their defaults.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return ParseSettings(data, filepath.Ext(path))
}

// ParseSettings decodes settings from data. ext selects the format: ".json"
// for JSON, anything else for YAML.
func ParseSettings(data []byte, ext string) (Settings, error) {
	s := DefaultSettings()
	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse settings json: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks field ranges and the background color syntax.
func (s Settings) Validate() error {
	var errs []error
	if s.Resolution.Width <= 0 || s.Resolution.Height <= 0 {
		errs = append(errs, fmt.Errorf("resolution %dx%d must be positive", s.Resolution.Width, s.Resolution.Height))
	}
	if s.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", s.TPS))
	}
	if _, err := ParseHexColor(s.BackgroundColor); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// RunConfig converts the settings for Run. The background color must be
// valid (see Validate); an invalid one falls back to transparent.
func (s Settings) RunConfig() RunConfig {
	bg, _ := ParseHexColor(s.BackgroundColor)
	title := s.Title
	if title == "" {
		title = s.MainScene
	}
	return RunConfig{
		Title:      title,
		Width:      s.Resolution.Width,
		Height:     s.Resolution.Height,
		TPS:        s.TPS,
		Background: bg,
		ShowFPS:    s.Debug,
	}
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return Color{}, fmt.Errorf("color %q: missing '#'", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: want 3, 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// FormatHexColor formats c as "#rrggbbaa", the inverse of ParseHexColor.
// Components are clamped to [0, 1] and rounded to 8 bits.
func FormatHexColor(c Color) string {
	b := func(v float64) uint8 { return uint8(clamp01(v)*255 + 0.5) }
	return fmt.Sprintf("#%02x%02x%02x%02x", b(c.R), b(c.G), b(c.B), b(c.A))
}
