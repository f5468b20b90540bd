package bind

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/mouse"
)

// Shortcut supports a structured JSON form for application-level
// persistence of user preferences. This is an opt-in capability; the
// capture widget never serializes bindings itself.
//
// The encoding is an object with optional "keyboard" and "pointer"
// fields holding display strings, e.g.
//
//	{"keyboard":"Ctrl+Shift+D","pointer":"Middle"}
//
// An unbound shortcut encodes as {}.

// MarshalJSON implements json.Marshaler.
func (s Shortcut) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	var err error
	if !s.Keyboard.IsNone() {
		out, err = sjson.SetBytes(out, "keyboard", s.Keyboard.Format(key.Names, false))
		if err != nil {
			return nil, err
		}
	}
	if s.Pointer != mouse.ButtonNone {
		out, err = sjson.SetBytes(out, "pointer", s.Pointer.String())
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// UnmarshalJSON implements json.Unmarshaler. Missing fields decode as
// absent parts; the whole value is replaced, never merged.
func (s *Shortcut) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: malformed JSON", ErrInvalidShortcut)
	}

	var next Shortcut
	if v := gjson.GetBytes(data, "keyboard"); v.Exists() {
		c, err := key.ParseChord(v.String())
		if err != nil {
			return fmt.Errorf("%w: keyboard: %v", ErrInvalidShortcut, err)
		}
		next.Keyboard = c
	}
	if v := gjson.GetBytes(data, "pointer"); v.Exists() {
		b := mouse.FromName(v.String())
		if b == mouse.ButtonNone {
			return fmt.Errorf("%w: unknown pointer button %q", ErrInvalidShortcut, v.String())
		}
		next.Pointer = b
	}

	*s = next
	return nil
}
