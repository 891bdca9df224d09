package modkey

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestPrepend(t *testing.T) {
	tests := []struct {
		name     string
		modifier Modifier
		key      string
		want     string
	}{
		{"none is identity", None, "up", "up"},
		{"shift", Shift, "up", "shift+up"},
		{"alt", Alt, "down", "alt+down"},
		{"ctrl", Ctrl, "pgup", "ctrl+pgup"},
		{"shift alt orders alt first", ShiftAlt, "up", "alt+shift+up"},
		{"shift ctrl orders ctrl first", ShiftCtrl, "up", "ctrl+shift+up"},
		{"alt ctrl", AltCtrl, "home", "alt+ctrl+home"},
		{"all three", ShiftAltCtrl, "end", "alt+ctrl+shift+end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.modifier.Prepend(tt.key); got != tt.want {
				t.Errorf("Prepend(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestPrependAll(t *testing.T) {
	got := Ctrl.PrependAll("up", "k")
	want := []string{"ctrl+up", "ctrl+k"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PrependAll = %v, want %v", got, want)
	}

	// None must not allocate a new slice behind the caller's back.
	names := []string{"up", "down"}
	if got := None.PrependAll(names...); !reflect.DeepEqual(got, names) {
		t.Errorf("None.PrependAll = %v, want %v", got, names)
	}
}

func TestRebind(t *testing.T) {
	original := key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	)

	bound := Alt.Rebind(original)

	wantKeys := []string{"alt+up", "alt+k"}
	if !reflect.DeepEqual(bound.Keys(), wantKeys) {
		t.Errorf("rebound keys = %v, want %v", bound.Keys(), wantKeys)
	}
	if bound.Help().Key != "alt+↑/k" {
		t.Errorf("rebound help key = %q, want %q", bound.Help().Key, "alt+↑/k")
	}
	if bound.Help().Desc != "move up" {
		t.Errorf("rebound help desc changed: %q", bound.Help().Desc)
	}

	// The original must be untouched.
	if !reflect.DeepEqual(original.Keys(), []string{"up", "k"}) {
		t.Errorf("original binding mutated: %v", original.Keys())
	}
}

func TestRebindNone(t *testing.T) {
	original := key.NewBinding(key.WithKeys("enter"))
	bound := None.Rebind(original)
	if !reflect.DeepEqual(bound.Keys(), original.Keys()) {
		t.Errorf("None.Rebind changed keys: %v", bound.Keys())
	}
}
