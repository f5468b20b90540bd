package key

import "testing"

func TestModifierHasWithWithout(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModShift)
	if !m.Has(ModCtrl) || !m.Has(ModShift) {
		t.Error("With should add modifiers")
	}
	if m.Has(ModAlt) {
		t.Error("Has should be false for absent modifier")
	}
	m = m.Without(ModCtrl)
	if m.Has(ModCtrl) {
		t.Error("Without should remove the modifier")
	}
	if m.IsEmpty() {
		t.Error("Shift should remain")
	}
	if !ModNone.IsEmpty() {
		t.Error("ModNone should be empty")
	}
}

func TestModifierNamesFormat(t *testing.T) {
	tests := []struct {
		mods  Modifier
		isMac bool
		want  string
	}{
		{ModNone, false, ""},
		{ModCtrl, false, "Ctrl"},
		{ModCtrl | ModShift, false, "Ctrl+Shift"},
		{ModShift | ModCtrl, false, "Ctrl+Shift"}, // order is fixed
		{ModAlt | ModMeta, false, "Alt+Meta"},
		{ModAlt | ModMeta, true, "Option+Cmd"},
	}

	for _, tt := range tests {
		if got := Names.Format(tt.mods, tt.isMac); got != tt.want {
			t.Errorf("Format(%v, mac=%v) = %q, want %q", tt.mods, tt.isMac, got, tt.want)
		}
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"ctrl", ModCtrl},
		{"Control", ModCtrl},
		{"ALT", ModAlt},
		{"option", ModAlt},
		{"shift", ModShift},
		{"cmd", ModMeta},
		{"super", ModMeta},
		{"bogus", ModNone},
	}

	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Escape", KeyEscape},
		{"escape", KeyEscape},
		{"esc", KeyEscape},
		{"Enter", KeyEnter},
		{"return", KeyEnter},
		{"F10", KeyF10},
		{"pgdn", KeyPageDown},
		{"bogus", KeyNone},
		{"None", KeyNone},
		{"Rune", KeyNone},
	}

	for _, tt := range tests {
		if got := FromName(tt.name); got != tt.want {
			t.Errorf("FromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
