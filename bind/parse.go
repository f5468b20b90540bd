package bind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/mouse"
)

// ErrInvalidShortcut indicates a shortcut specification or serialized
// form that cannot be decoded.
var ErrInvalidShortcut = errors.New("invalid shortcut")

// ParseShortcut parses the display form produced by Shortcut.Format
// with the key.Names table: "Ctrl+S", "Middle", "Ctrl+X+Middle",
// "None". A trailing token naming a bindable mouse button becomes the
// pointer part; everything before it parses as a chord.
//
// "Left" and "Right" always parse as arrow keys, never as buttons: the
// primary and secondary buttons cannot be captured, so they do not
// occur in formatted shortcuts.
func ParseShortcut(spec string) (Shortcut, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Shortcut{}, fmt.Errorf("%w: empty specification", ErrInvalidShortcut)
	}
	if strings.EqualFold(spec, noneText) {
		return Shortcut{}, nil
	}

	parts := strings.Split(spec, "+")
	last := parts[len(parts)-1]
	if b := mouse.FromName(last); b.Bindable() {
		rest := strings.Join(parts[:len(parts)-1], "+")
		if rest == "" {
			return Shortcut{Pointer: b}, nil
		}
		c, err := key.ParseChord(rest)
		if err != nil {
			return Shortcut{}, fmt.Errorf("%w: %v", ErrInvalidShortcut, err)
		}
		return Shortcut{Keyboard: c, Pointer: b}, nil
	}

	c, err := key.ParseChord(spec)
	if err != nil {
		return Shortcut{}, fmt.Errorf("%w: %v", ErrInvalidShortcut, err)
	}
	return Shortcut{Keyboard: c}, nil
}

// MustParseShortcut parses a shortcut specification and panics on
// error. Use only for known-valid specs in initialization code.
func MustParseShortcut(spec string) Shortcut {
	s, err := ParseShortcut(spec)
	if err != nil {
		panic("invalid shortcut specification: " + spec + ": " + err.Error())
	}
	return s
}
