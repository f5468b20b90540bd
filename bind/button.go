package bind

import (
	"github.com/dshills/keybind/input"
	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/mouse"
)

// Button binds a mouse button. Capture extracts only the pointer value;
// an absent pointer argument leaves the old value in place.
type Button mouse.Button

// Set implements Bind. The keyboard slot is ignored.
func (b *Button) Set(_ key.Chord, btn mouse.Button) {
	if btn != mouse.ButtonNone {
		*b = Button(btn)
	}
}

// Format implements Bind. Renders the button name, "None" when unset.
func (b *Button) Format(_ *key.ModifierNames, _ bool) string {
	return mouse.Button(*b).String()
}

// Pressed implements Bind. True when the button is pressed down this
// frame; does not consume.
func (b *Button) Pressed(in *input.State) bool {
	return in.ButtonPressed(mouse.Button(*b))
}

// OptionalButton binds a mouse button that may be unset. Unlike Button,
// capture assigns the pointer slot unconditionally, so an absent
// argument clears the binding.
type OptionalButton mouse.Button

// Set implements Bind. The keyboard slot is ignored.
func (b *OptionalButton) Set(_ key.Chord, btn mouse.Button) {
	*b = OptionalButton(btn)
}

// Format implements Bind.
func (b *OptionalButton) Format(_ *key.ModifierNames, _ bool) string {
	return mouse.Button(*b).String()
}

// Pressed implements Bind. See Button.Pressed.
func (b *OptionalButton) Pressed(in *input.State) bool {
	return in.ButtonPressed(mouse.Button(*b))
}
