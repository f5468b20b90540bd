package bind

import (
	"github.com/dshills/keybind/input"
	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/mouse"
)

// Chord binds a keyboard chord. Capture only ever replaces it with a
// new chord; an absent keyboard argument leaves the old value in place,
// so once seeded it is never empty.
type Chord key.Chord

// Set implements Bind. The pointer slot is ignored.
func (c *Chord) Set(kb key.Chord, _ mouse.Button) {
	if !kb.IsNone() {
		*c = Chord(kb)
	}
}

// Format implements Bind.
func (c *Chord) Format(names *key.ModifierNames, isMac bool) string {
	return key.Chord(*c).Format(names, isMac)
}

// Pressed implements Bind, consuming a matching key press.
func (c *Chord) Pressed(in *input.State) bool {
	return in.ConsumeChord(key.Chord(*c))
}

// OptionalChord binds a keyboard chord that may be empty. Unlike Chord,
// capture assigns the keyboard slot unconditionally, so an absent
// argument clears the binding.
type OptionalChord key.Chord

// Set implements Bind. The pointer slot is ignored.
func (c *OptionalChord) Set(kb key.Chord, _ mouse.Button) {
	*c = OptionalChord(kb)
}

// Format implements Bind.
func (c *OptionalChord) Format(names *key.ModifierNames, isMac bool) string {
	return key.Chord(*c).Format(names, isMac)
}

// Pressed implements Bind, consuming a matching key press.
func (c *OptionalChord) Pressed(in *input.State) bool {
	kc := key.Chord(*c)
	if kc.IsNone() {
		return false
	}
	return in.ConsumeChord(kc)
}
