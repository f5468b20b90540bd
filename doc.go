// Package keybind provides an immediate-mode hotkey capture widget for
// frame-driven UIs: it displays the currently bound keyboard shortcut
// and/or mouse button and, when clicked, listens for the next qualifying
// input event and rebinds itself to it.
//
// The widget is host-agnostic: each frame it is handed a UI value
// supplying the frame's input snapshot, a persistent boolean store for
// the listening flag, layout allocation, and painting. The tcellhost
// package provides a terminal host; tests drive the widget with a fake.
//
// # Usage
//
//	sc := bind.Shortcut{Keyboard: key.MustParseChord("Ctrl+Shift+D")}
//	w := keybind.New(&sc, "toggle-thing").
//		WithText("Toggle the thing").
//		WithResetKey(key.NewChord(key.KeyEscape, key.ModNone))
//
//	// once per frame, inside the host's layout pass:
//	resp := w.Render(ui)
//	if resp.Changed {
//		// the user rebound the shortcut
//	}
//
// While listening, the first non-repeat key press or press of a bindable
// mouse button becomes the new binding; a click outside the widget
// cancels; the configured reset key restores the reset value. The
// primary and secondary mouse buttons never qualify as capture input so
// the widget itself stays clickable.
//
// Two widgets sharing one identity is a caller error: their listening
// flags alias and display behavior is unspecified.
package keybind
