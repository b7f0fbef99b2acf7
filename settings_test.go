package sapling

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Resolution.Width != 480 || s.Resolution.Height != 360 {
		t.Errorf("resolution = %+v, want 480x360", s.Resolution)
	}
	if s.BackgroundColor != "#ccc" || s.TPS != DefaultTPS {
		t.Errorf("defaults = %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParseSettingsYAMLKeepsDefaults(t *testing.T) {
	s, err := ParseSettings([]byte(`
main_scene: scenes/main.yaml
description: a test game
resolution:
  width: 640
  height: 480
`), ".yaml")
	if err != nil {
		t.Fatal(err)
	}
	if s.MainScene != "scenes/main.yaml" || s.Description != "a test game" {
		t.Errorf("parsed = %+v", s)
	}
	if s.Resolution.Width != 640 || s.Resolution.Height != 480 {
		t.Errorf("resolution = %+v", s.Resolution)
	}
	if s.BackgroundColor != "#ccc" || s.TPS != DefaultTPS {
		t.Error("unset fields should keep defaults")
	}
}

func TestParseSettingsJSON(t *testing.T) {
	s, err := ParseSettings([]byte(`{"main_scene":"m","background_color":"#102030","tps":30,"debug":true}`), ".JSON")
	if err != nil {
		t.Fatal(err)
	}
	if s.TPS != 30 || !s.Debug || s.BackgroundColor != "#102030" {
		t.Errorf("parsed = %+v", s)
	}
}

func TestParseSettingsInvalid(t *testing.T) {
	tests := []struct {
		name, data, ext, want string
	}{
		{"bad yaml", "resolution: [", ".yaml", "parse settings yaml"},
		{"bad json", "{", ".json", "parse settings json"},
		{"zero width", "resolution: {width: 0, height: 10}", ".yml", "resolution"},
		{"negative tps", "tps: -1", ".yaml", "tps"},
		{"bad color", "background_color: red", ".yaml", "missing '#'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSettings([]byte(tt.data), tt.ext)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("title: Demo\ntps: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Title != "Demo" || s.TPS != 120 {
		t.Errorf("loaded = %+v", s)
	}
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSettingsRunConfig(t *testing.T) {
	s := DefaultSettings()
	s.Title = ""
	s.MainScene = "level1"
	s.Debug = true
	cfg := s.RunConfig()
	if cfg.Title != "level1" {
		t.Errorf("Title = %q, want main scene fallback", cfg.Title)
	}
	if cfg.Width != 480 || cfg.Height != 360 || cfg.TPS != DefaultTPS || !cfg.ShowFPS {
		t.Errorf("cfg = %+v", cfg)
	}
	want := Color{R: 0xcc / 255.0, G: 0xcc / 255.0, B: 0xcc / 255.0, A: 1}
	if cfg.Background != want {
		t.Errorf("Background = %+v, want %+v", cfg.Background, want)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#fff", Color{1, 1, 1, 1}, false},
		{"#000000", Color{0, 0, 0, 1}, false},
		{"#ff000080", Color{1, 0, 0, 128.0 / 255.0}, false},
		{" #00ff00 ", Color{0, 1, 0, 1}, false},
		{"fff", Color{}, true},
		{"#ffff", Color{}, true},
		{"#gggggg", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestFormatHexColor(t *testing.T) {
	tests := []struct {
		in   Color
		want string
	}{
		{Color{1, 1, 1, 1}, "#ffffffff"},
		{Color{0, 0, 0, 0}, "#00000000"},
		{Color{2, -1, 0.2, 1}, "#ff0033ff"},
	}
	for _, tt := range tests {
		if got := FormatHexColor(tt.in); got != tt.want {
			t.Errorf("FormatHexColor(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
