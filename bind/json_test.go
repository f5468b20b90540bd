package bind

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/mouse"
)

func TestShortcutMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		shortcut Shortcut
		want     string
	}{
		{"empty", Shortcut{}, `{}`},
		{"keyboard", NewShortcut(key.MustParseChord("Ctrl+Shift+D"), mouse.ButtonNone), `{"keyboard":"Ctrl+Shift+D"}`},
		{"pointer", NewShortcut(key.Chord{}, mouse.ButtonMiddle), `{"pointer":"Middle"}`},
		{"both", NewShortcut(key.MustParseChord("Ctrl+X"), mouse.ButtonBack), `{"keyboard":"Ctrl+X","pointer":"Back"}`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.shortcut)
		if err != nil {
			t.Errorf("%s: Marshal error: %v", tt.name, err)
			continue
		}
		if string(data) != tt.want {
			t.Errorf("%s: Marshal = %s, want %s", tt.name, data, tt.want)
		}
	}
}

func TestShortcutUnmarshalJSON(t *testing.T) {
	var s Shortcut
	if err := json.Unmarshal([]byte(`{"keyboard":"Ctrl+Shift+D","pointer":"Middle"}`), &s); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	want := NewShortcut(key.MustParseChord("Ctrl+Shift+D"), mouse.ButtonMiddle)
	if s != want {
		t.Errorf("Unmarshal = %+v, want %+v", s, want)
	}

	// Missing fields replace, never merge.
	if err := json.Unmarshal([]byte(`{}`), &s); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !s.IsNone() {
		t.Errorf("decoding {} should clear the shortcut, got %+v", s)
	}
}

func TestShortcutUnmarshalJSONErrors(t *testing.T) {
	inputs := []string{
		`{"keyboard":"Bogus+X"}`,
		`{"pointer":"Pinky"}`,
		`{"keyboard":`,
	}

	for _, in := range inputs {
		var s Shortcut
		err := s.UnmarshalJSON([]byte(in))
		if !errors.Is(err, ErrInvalidShortcut) {
			t.Errorf("UnmarshalJSON(%s) error = %v, want ErrInvalidShortcut", in, err)
		}
	}
}

func TestShortcutJSONRoundTrip(t *testing.T) {
	orig := NewShortcut(key.MustParseChord("Alt+F4"), mouse.ButtonForward)
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var back Shortcut
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if back != orig {
		t.Errorf("round trip = %+v, want %+v", back, orig)
	}
}
