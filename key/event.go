package key

// Event describes a single key press as delivered by the host for one
// frame. Unlike Chord it carries the auto-repeat flag, which capture
// logic uses to ignore held-down keys.
type Event struct {
	// Key is the logical key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Mods are the modifiers held during the press.
	Mods Modifier

	// Repeat is true when the event was generated by key auto-repeat
	// rather than a fresh press.
	Repeat bool
}

// NewEvent creates a key event for a special key.
func NewEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Mods: mods}
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Mods: mods}
}

// Chord returns the chord this event would bind: the logical key with
// the held modifiers, character normalized to lowercase.
func (e Event) Chord() Chord {
	if e.Key == KeyRune {
		return NewRuneChord(e.Rune, e.Mods)
	}
	return NewChord(e.Key, e.Mods)
}

// String renders the event like a chord, ignoring the repeat flag.
func (e Event) String() string {
	return e.Chord().String()
}
