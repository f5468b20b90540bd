package bind

import (
	"github.com/dshills/keybind/input"
	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/mouse"
)

// Shortcut is the composite binding: an optional keyboard chord paired
// with an optional mouse button. When both are set, the action triggers
// only when both are satisfied in the same frame; with no keyboard part
// the button alone decides. The zero Shortcut is unbound and renders as
// "None".
type Shortcut struct {
	// Keyboard is the keyboard part; an empty chord means absent.
	Keyboard key.Chord

	// Pointer is the mouse part; ButtonNone means absent.
	Pointer mouse.Button
}

// NewShortcut creates a shortcut with the given parts, either of which
// may be absent.
func NewShortcut(kb key.Chord, btn mouse.Button) Shortcut {
	return Shortcut{Keyboard: kb, Pointer: btn}
}

// IsNone returns true when neither part is set.
func (s Shortcut) IsNone() bool {
	return s.Keyboard.IsNone() && s.Pointer == mouse.ButtonNone
}

// Set implements Bind. Both slots are stored independently and
// unconditionally: an absent argument clears its slot. Complete
// replace, not a merge.
func (s *Shortcut) Set(kb key.Chord, btn mouse.Button) {
	s.Keyboard = kb
	s.Pointer = btn
}

// Format implements Bind. Keyboard text first, then the button name,
// joined with "+" only when both are present; "None" when empty.
func (s *Shortcut) Format(names *key.ModifierNames, isMac bool) string {
	var text string
	if !s.Keyboard.IsNone() {
		text = s.Keyboard.Format(names, isMac)
	}
	if s.Pointer != mouse.ButtonNone {
		if text != "" {
			text += "+"
		}
		text += s.Pointer.String()
	}
	if text == "" {
		return noneText
	}
	return text
}

// String renders the shortcut with the default name table.
func (s Shortcut) String() string {
	return s.Format(key.Names, false)
}

// Pressed implements Bind. A present keyboard part is tested first and
// its press consumed; a present pointer part must additionally be
// clicked this frame, unless there is no keyboard part, in which case
// the click alone decides.
func (s *Shortcut) Pressed(in *input.State) bool {
	pressed := false
	if !s.Keyboard.IsNone() {
		pressed = in.ConsumeChord(s.Keyboard)
	}
	if s.Pointer != mouse.ButtonNone {
		if s.Keyboard.IsNone() {
			return in.ButtonClicked(s.Pointer)
		}
		pressed = pressed && in.ButtonClicked(s.Pointer)
	}
	return pressed
}
