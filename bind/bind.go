// Package bind defines the capability contract for bindable values and
// the built-in binding variants: a keyboard chord, a bare key, a mouse
// button, optional forms of each, and the composite Shortcut pairing an
// optional chord with an optional button.
//
// All variants are plain value types whose pointers implement Bind, so a
// binding can be snapshotted by simple assignment. Applications may add
// custom variants by implementing the same interface.
//
// Absence is represented with zero values: an empty key.Chord
// (Chord.IsNone) for the keyboard slot and mouse.ButtonNone for the
// pointer slot. Every operation is total; nothing here can fail.
package bind

import (
	"github.com/dshills/keybind/input"
	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/mouse"
)

// noneText is the canonical display string for an empty binding.
const noneText = "None"

// Bind is the capability contract for a bindable value.
type Bind interface {
	// Set updates the binding with a freshly captured keyboard chord
	// and/or pointer button. An empty chord or ButtonNone marks that
	// slot as absent; each variant decides which slots it honors.
	// Set cannot fail, it only assigns.
	Set(kb key.Chord, btn mouse.Button)

	// Format renders the binding for humans using the given modifier
	// name table. An empty binding renders as "None".
	Format(names *key.ModifierNames, isMac bool) string

	// Pressed reports whether the binding is satisfied by this frame's
	// input, consuming matched key presses so the same physical press
	// is not re-detected by another binding.
	Pressed(in *input.State) bool
}
