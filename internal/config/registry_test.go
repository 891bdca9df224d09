package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "extrabubbles") {
		t.Errorf("GetConfigDir() = %v, should contain 'extrabubbles'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "gallery.yaml" {
		t.Errorf("GetConfigPath() should end with 'gallery.yaml', got: %v", configPath)
	}
}

func TestNewSettings(t *testing.T) {
	s := NewSettings()

	if s.Version != 1 {
		t.Errorf("NewSettings().Version = %v, want 1", s.Version)
	}
	if s.Theme != ThemeDefault {
		t.Errorf("NewSettings().Theme = %v, want %v", s.Theme, ThemeDefault)
	}
	if s.DateOrder != DateOrderDayMonthYear {
		t.Errorf("NewSettings().DateOrder = %v, want %v", s.DateOrder, DateOrderDayMonthYear)
	}
	if s.DayFormat != DayFormatWeekdayDay {
		t.Errorf("NewSettings().DayFormat = %v, want %v", s.DayFormat, DayFormatWeekdayDay)
	}
	if s.Modifier != ModifierNone {
		t.Errorf("NewSettings().Modifier = %v, want %v", s.Modifier, ModifierNone)
	}
	if s.LastDemo != "" {
		t.Errorf("NewSettings().LastDemo = %v, want empty", s.LastDemo)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		settings  Settings
		wantReset []string
		verify    func(t *testing.T, s Settings)
	}{
		{
			name:      "valid values pass through",
			settings:  Settings{Version: 1, Theme: ThemeDim, DateOrder: DateOrderYearMonthDay, DayFormat: DayFormatTwoDigit, Modifier: ModifierCtrl},
			wantReset: nil,
			verify: func(t *testing.T, s Settings) {
				if s.Theme != ThemeDim {
					t.Errorf("Theme = %v, want %v", s.Theme, ThemeDim)
				}
				if s.Modifier != ModifierCtrl {
					t.Errorf("Modifier = %v, want %v", s.Modifier, ModifierCtrl)
				}
			},
		},
		{
			name:      "empty fields get defaults silently",
			settings:  Settings{Version: 1},
			wantReset: nil,
			verify: func(t *testing.T, s Settings) {
				if s.Theme != ThemeDefault {
					t.Errorf("Theme = %v, want %v", s.Theme, ThemeDefault)
				}
				if s.DateOrder != DateOrderDayMonthYear {
					t.Errorf("DateOrder = %v, want %v", s.DateOrder, DateOrderDayMonthYear)
				}
			},
		},
		{
			name:      "unknown values are reported and reset",
			settings:  Settings{Version: 1, Theme: "neon", DateOrder: "backwards", DayFormat: DayFormatDay, Modifier: "hyper"},
			wantReset: []string{"theme", "date_order", "modifier"},
			verify: func(t *testing.T, s Settings) {
				if s.Theme != ThemeDefault {
					t.Errorf("Theme = %v, want %v", s.Theme, ThemeDefault)
				}
				if s.DayFormat != DayFormatDay {
					t.Errorf("DayFormat = %v, want %v (valid value should survive)", s.DayFormat, DayFormatDay)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.settings
			reset := s.normalize()

			if len(reset) != len(tt.wantReset) {
				t.Fatalf("normalize() reset %v, want %v", reset, tt.wantReset)
			}
			for i := range reset {
				if reset[i] != tt.wantReset[i] {
					t.Errorf("normalize() reset[%d] = %v, want %v", i, reset[i], tt.wantReset[i])
				}
			}
			tt.verify(t, s)
		})
	}
}

func TestSettingsSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")

	s := NewSettings()
	s.Theme = ThemeDim
	s.DateOrder = DateOrderMonthDayYear
	s.Modifier = ModifierAlt
	s.LastDemo = "datepicker"

	if err := s.saveTo(path); err != nil {
		t.Fatalf("saveTo() error = %v", err)
	}

	// The written file carries the generated header
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written settings: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Extrabubbles Gallery Settings") {
		t.Errorf("settings file should start with the header comment, got: %q", string(data[:40]))
	}

	loaded, err := loadSettingsFrom(path)
	if err != nil {
		t.Fatalf("loadSettingsFrom() error = %v", err)
	}

	if *loaded != *s {
		t.Errorf("loaded settings = %+v, want %+v", *loaded, *s)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")

	loaded, err := loadSettingsFrom(path)
	if err != nil {
		t.Fatalf("loadSettingsFrom() error = %v", err)
	}

	if *loaded != *NewSettings() {
		t.Errorf("missing file should yield defaults, got %+v", *loaded)
	}
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	if err := os.WriteFile(path, []byte("version: 7\n"), 0600); err != nil {
		t.Fatalf("failed to write test settings: %v", err)
	}

	if _, err := loadSettingsFrom(path); err == nil {
		t.Error("loadSettingsFrom() should reject version 7")
	}
}

func TestLoadFallsBackOnUnknownValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	content := `version: 1
theme: "neon"
date_order: "year-month-day"
day_format: "roman-numerals"
modifier: "none"
last_demo: "dialog"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test settings: %v", err)
	}

	loaded, err := loadSettingsFrom(path)
	if err != nil {
		t.Fatalf("loadSettingsFrom() error = %v", err)
	}

	if loaded.Theme != ThemeDefault {
		t.Errorf("Theme = %v, want fallback %v", loaded.Theme, ThemeDefault)
	}
	if loaded.DateOrder != DateOrderYearMonthDay {
		t.Errorf("DateOrder = %v, want %v (valid value should survive)", loaded.DateOrder, DateOrderYearMonthDay)
	}
	if loaded.DayFormat != DayFormatWeekdayDay {
		t.Errorf("DayFormat = %v, want fallback %v", loaded.DayFormat, DayFormatWeekdayDay)
	}
	if loaded.LastDemo != "dialog" {
		t.Errorf("LastDemo = %v, want dialog", loaded.LastDemo)
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		setting string
		value   string
		wantErr bool
	}{
		{name: "theme", setting: "theme", value: ThemeDim},
		{name: "date order", setting: "date-order", value: DateOrderYearMonthDay},
		{name: "day format", setting: "day-format", value: DayFormatTwoDigit},
		{name: "modifier", setting: "modifier", value: ModifierCtrl},
		{name: "bad theme", setting: "theme", value: "neon", wantErr: true},
		{name: "bad modifier", setting: "modifier", value: "hyper", wantErr: true},
		{name: "unknown setting", setting: "volume", value: "11", wantErr: true},
		{name: "yaml spelling rejected", setting: "date_order", value: DateOrderYearMonthDay, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSettings()
			err := s.Set(tt.setting, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Set(%q, %q) expected error", tt.setting, tt.value)
				}
				if *s != *NewSettings() {
					t.Errorf("failed Set() should not modify settings")
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q, %q) error = %v", tt.setting, tt.value, err)
			}
		})
	}
}

func TestSetThenSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")

	s := NewSettings()
	if err := s.Set("theme", ThemeDim); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.saveTo(path); err != nil {
		t.Fatalf("saveTo() error = %v", err)
	}

	loaded, err := loadSettingsFrom(path)
	if err != nil {
		t.Fatalf("loadSettingsFrom() error = %v", err)
	}
	if loaded.Theme != ThemeDim {
		t.Errorf("Theme = %v after round trip, want %v", loaded.Theme, ThemeDim)
	}
}

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}
