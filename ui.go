package keybind

import "github.com/dshills/keybind/input"

// Store is the host's frame-surviving state, keyed by an opaque widget
// identity. The widget uses it to persist the listening flag between
// frames; it never stores binding values there.
type Store interface {
	// Bool returns the stored flag for an identity, false when the
	// identity has never been written.
	Bool(id string) bool

	// SetBool stores the flag for an identity.
	SetBool(id string, v bool)
}

// Painter draws the widget's parts. Hosts decide the actual visuals;
// the widget only reports geometry, text, and whether it is listening.
type Painter interface {
	// PaintButton draws the button region with the binding text,
	// using the host's selected/interactive styling when active.
	PaintButton(r Rect, text string, active bool)

	// PaintLabel draws the optional label next to the button.
	PaintLabel(r Rect, text string)
}

// UI is what a host hands the widget once per frame.
type UI interface {
	// Input returns this frame's input snapshot.
	Input() *input.State

	// Memory returns the frame-surviving state store.
	Memory() Store

	// Allocate reserves a region of the given size in the host's
	// layout and returns it.
	Allocate(w, h int) Rect

	Painter
}

// Response reports what happened to the widget this frame.
type Response struct {
	// Clicked is true when the widget registered a primary click.
	Clicked bool

	// Changed is true when the binding was overwritten this frame,
	// by capture or by the reset key.
	Changed bool

	// Rect is the allocated screen region, button and label included.
	Rect Rect

	// Description is an accessibility string combining the formatted
	// binding and the label, e.g. "Ctrl+T. Open the terminal".
	Description string
}
