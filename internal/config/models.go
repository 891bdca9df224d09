package config

import (
	"fmt"
	"sort"
	"strings"
)

// Known values for the enumerated settings fields. Unknown values fall
// back to the first entry of each set when a settings file is loaded.
const (
	ThemeDefault = "default"
	ThemeDim     = "dim"

	DateOrderDayMonthYear = "day-month-year"
	DateOrderMonthDayYear = "month-day-year"
	DateOrderYearMonthDay = "year-month-day"

	DayFormatWeekdayDay = "weekday-day"
	DayFormatDay        = "day"
	DayFormatTwoDigit   = "day-two-digit"

	ModifierNone  = "none"
	ModifierCtrl  = "ctrl"
	ModifierAlt   = "alt"
	ModifierShift = "shift"
)

var (
	knownThemes = map[string]bool{
		ThemeDefault: true,
		ThemeDim:     true,
	}
	knownDateOrders = map[string]bool{
		DateOrderDayMonthYear: true,
		DateOrderMonthDayYear: true,
		DateOrderYearMonthDay: true,
	}
	knownDayFormats = map[string]bool{
		DayFormatWeekdayDay: true,
		DayFormatDay:        true,
		DayFormatTwoDigit:   true,
	}
	knownModifiers = map[string]bool{
		ModifierNone:  true,
		ModifierCtrl:  true,
		ModifierAlt:   true,
		ModifierShift: true,
	}
)

// Settings represents the gallery settings file. All fields are display
// preferences; nothing here is required for the widget packages themselves.
type Settings struct {
	Version   int    `yaml:"version"`
	Theme     string `yaml:"theme,omitempty"`      // Color theme ("default", "dim")
	DateOrder string `yaml:"date_order,omitempty"` // Date picker column order
	DayFormat string `yaml:"day_format,omitempty"` // Date picker day row format
	Modifier  string `yaml:"modifier,omitempty"`   // Key modifier for widget navigation
	LastDemo  string `yaml:"last_demo,omitempty"`  // Demo screen opened on last run
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:   1,
		Theme:     ThemeDefault,
		DateOrder: DateOrderDayMonthYear,
		DayFormat: DayFormatWeekdayDay,
		Modifier:  ModifierNone,
	}
}

// Set updates the named setting after validating the value. Names use the
// command line spelling: theme, date-order, day-format, modifier.
func (s *Settings) Set(name, value string) error {
	switch name {
	case "theme":
		if !knownThemes[value] {
			return fmt.Errorf("unknown theme %q (use %s)", value, knownValues(knownThemes))
		}
		s.Theme = value
	case "date-order":
		if !knownDateOrders[value] {
			return fmt.Errorf("unknown date order %q (use %s)", value, knownValues(knownDateOrders))
		}
		s.DateOrder = value
	case "day-format":
		if !knownDayFormats[value] {
			return fmt.Errorf("unknown day format %q (use %s)", value, knownValues(knownDayFormats))
		}
		s.DayFormat = value
	case "modifier":
		if !knownModifiers[value] {
			return fmt.Errorf("unknown modifier %q (use %s)", value, knownValues(knownModifiers))
		}
		s.Modifier = value
	default:
		return fmt.Errorf("unknown setting %q (use theme, date-order, day-format or modifier)", name)
	}
	return nil
}

func knownValues(set map[string]bool) string {
	values := make([]string, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	sort.Strings(values)
	return strings.Join(values, ", ")
}

// normalize replaces unknown or empty field values with their defaults.
// Returns the names of the fields that were reset.
func (s *Settings) normalize() []string {
	var reset []string
	if !knownThemes[s.Theme] {
		if s.Theme != "" {
			reset = append(reset, "theme")
		}
		s.Theme = ThemeDefault
	}
	if !knownDateOrders[s.DateOrder] {
		if s.DateOrder != "" {
			reset = append(reset, "date_order")
		}
		s.DateOrder = DateOrderDayMonthYear
	}
	if !knownDayFormats[s.DayFormat] {
		if s.DayFormat != "" {
			reset = append(reset, "day_format")
		}
		s.DayFormat = DayFormatWeekdayDay
	}
	if !knownModifiers[s.Modifier] {
		if s.Modifier != "" {
			reset = append(reset, "modifier")
		}
		s.Modifier = ModifierNone
	}
	return reset
}
