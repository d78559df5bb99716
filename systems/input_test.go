package systems

import (
	"testing"

	"github.com/automoto/titlemenu/components"
	cfg "github.com/automoto/titlemenu/config"
)

func TestGetAction(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr bool
		want       components.ActionState
	}{
		{"idle", false, false, components.ActionState{}},
		{"pressed", false, true, components.ActionState{Pressed: true, JustPressed: true}},
		{"held", true, true, components.ActionState{Pressed: true}},
		{"released", true, false, components.ActionState{JustReleased: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input components.InputData
			input.Previous[cfg.ActionMenuSelect] = tt.prev
			input.Current[cfg.ActionMenuSelect] = tt.curr

			if got := GetAction(&input, cfg.ActionMenuSelect); got != tt.want {
				t.Errorf("GetAction = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMenuKeyEvents(t *testing.T) {
	var input components.InputData
	input.Current[cfg.ActionMenuSelect] = true
	input.Current[cfg.ActionMenuUp] = true
	input.Current[cfg.ActionMenuDown] = true
	input.Previous[cfg.ActionMenuDown] = true // held, not a new press
	input.Current[cfg.ActionMenuBack] = true  // not a menu key

	events := MenuKeyEvents(&input)

	want := []components.MenuKey{components.KeyUp, components.KeyConfirm}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), events)
	}
	for i, ev := range events {
		if ev.Key != want[i] {
			t.Errorf("event %d = %s, want %s", i, ev.Key, want[i])
		}
	}
}

func TestMenuKeyEvents_NoInput(t *testing.T) {
	var input components.InputData
	if events := MenuKeyEvents(&input); len(events) != 0 {
		t.Errorf("expected no events, got %v", events)
	}
}

func TestControllerTypeFromName(t *testing.T) {
	tests := map[string]components.InputMethod{
		"Sony DualSense Wireless Controller": components.InputPlayStation,
		"PS4 Controller":                     components.InputPlayStation,
		"Xbox Wireless Controller":           components.InputXbox,
		"Generic USB Gamepad":                components.InputXbox,
	}
	for name, want := range tests {
		if got := controllerTypeFromName(name); got != want {
			t.Errorf("controllerTypeFromName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestGetMenuHint(t *testing.T) {
	if hint := getMenuHint(components.InputKeyboard); hint != "Arrows: Navigate   Enter: Select" {
		t.Errorf("unexpected keyboard hint %q", hint)
	}
	if hint := getMenuHint(components.InputPlayStation); hint == getMenuHint(components.InputXbox) {
		t.Error("expected PlayStation and Xbox hints to differ")
	}
}
