package key

import (
	"strings"
	"unicode"
)

// Chord is a logical key plus a modifier combination.
// Character keys use KeyRune with the character in Rune; special keys
// use their Key constant with Rune zero. The zero Chord means nothing
// is bound.
type Chord struct {
	// Key is the logical key.
	Key Key

	// Rune is the character for KeyRune chords.
	Rune rune

	// Mods are the required modifier keys.
	Mods Modifier
}

// NewChord creates a chord for a special key.
func NewChord(k Key, mods Modifier) Chord {
	return Chord{Key: k, Mods: mods}
}

// NewRuneChord creates a chord for a character key.
// The character is normalized to lowercase so that "Shift+D" and a
// captured uppercase 'D' compare equal.
func NewRuneChord(r rune, mods Modifier) Chord {
	return Chord{Key: KeyRune, Rune: unicode.ToLower(r), Mods: mods}
}

// IsNone returns true when nothing is bound.
func (c Chord) IsNone() bool {
	return c.Key == KeyNone && c.Rune == 0
}

// KeyName returns the display name of the chord's key without modifiers.
func (c Chord) KeyName() string {
	if c.Key == KeyRune {
		if c.Rune == ' ' {
			return "Space"
		}
		return strings.ToUpper(string(c.Rune))
	}
	return c.Key.String()
}

// Format renders the chord using the given name table, e.g.
// "Ctrl+Shift+D". An empty chord renders as "None".
func (c Chord) Format(names *ModifierNames, isMac bool) string {
	if c.IsNone() {
		return keyNames[KeyNone]
	}
	mods := names.Format(c.Mods, isMac)
	if mods == "" {
		return c.KeyName()
	}
	return mods + names.Concat + c.KeyName()
}

// String renders the chord with the default name table.
func (c Chord) String() string {
	return c.Format(Names, false)
}

// Matches reports whether a key event satisfies this chord exactly:
// same logical key and the same modifier combination. Character
// comparison ignores case.
func (c Chord) Matches(e Event) bool {
	if c.IsNone() || e.Key != c.Key || e.Mods != c.Mods {
		return false
	}
	if c.Key == KeyRune {
		return unicode.ToLower(e.Rune) == unicode.ToLower(c.Rune)
	}
	return true
}

// SameKey reports whether a key event presses the chord's key,
// ignoring modifiers. Used for reset-key detection.
func (c Chord) SameKey(e Event) bool {
	if c.IsNone() || e.Key != c.Key {
		return false
	}
	if c.Key == KeyRune {
		return unicode.ToLower(e.Rune) == unicode.ToLower(c.Rune)
	}
	return true
}
