package bind

import (
	"github.com/dshills/keybind/input"
	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/mouse"
)

// Key binds a bare logical key. Capture extracts only the key from a
// captured chord and discards its modifiers; an absent keyboard
// argument leaves the old value in place.
type Key key.Chord

// Set implements Bind. Modifiers and the pointer slot are ignored.
func (k *Key) Set(kb key.Chord, _ mouse.Button) {
	if !kb.IsNone() {
		kb.Mods = key.ModNone
		*k = Key(kb)
	}
}

// Format implements Bind. Renders the key name alone.
func (k *Key) Format(names *key.ModifierNames, isMac bool) string {
	return key.Chord(*k).Format(names, isMac)
}

// Pressed implements Bind. True when the key is pressed this frame
// regardless of held modifiers; does not consume.
func (k *Key) Pressed(in *input.State) bool {
	return in.KeyPressed(key.Chord(*k))
}

// OptionalKey binds a bare logical key that may be empty. Capture
// behaves exactly like Key: an absent keyboard argument never clears
// it, only a new key replaces it.
type OptionalKey key.Chord

// Set implements Bind. Modifiers and the pointer slot are ignored.
func (k *OptionalKey) Set(kb key.Chord, _ mouse.Button) {
	if !kb.IsNone() {
		kb.Mods = key.ModNone
		*k = OptionalKey(kb)
	}
}

// Format implements Bind.
func (k *OptionalKey) Format(names *key.ModifierNames, isMac bool) string {
	return key.Chord(*k).Format(names, isMac)
}

// Pressed implements Bind. See Key.Pressed.
func (k *OptionalKey) Pressed(in *input.State) bool {
	kc := key.Chord(*k)
	if kc.IsNone() {
		return false
	}
	return in.KeyPressed(kc)
}
