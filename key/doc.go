// Package key defines the keyboard vocabulary used by keybind bindings:
// logical keys, modifier flags, chords (a logical key plus modifiers),
// per-frame key events, and the display-name tables used to format
// chords for humans.
//
// # Chords
//
// A Chord pairs a logical key with a modifier combination. Character keys
// use KeyRune with the character stored in the Rune field; special keys
// (Escape, F5, arrows) use their own Key constants with Rune zero.
// The zero Chord means "nothing bound" and is reported by IsNone.
//
// Chords format through a ModifierNames table so applications can choose
// between full names ("Ctrl+Shift+D") and compact symbols ("⌃⇧D"), with
// macOS substitutions applied when requested.
//
// # Parsing
//
// ParseChord accepts the same syntax that Chord.Format produces with the
// Names table, so display strings round-trip:
//
//	c, err := key.ParseChord("Ctrl+Shift+D")
//	c.Format(key.Names, false) // "Ctrl+Shift+D"
package key
