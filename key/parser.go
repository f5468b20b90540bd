package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty chord specification")
	ErrInvalidSpec = errors.New("invalid chord specification")
)

// ParseChord parses a chord specification string.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@", "+"
//   - Special keys: "Enter", "Escape", "F5", "Space"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+D", "Ctrl++"
//   - The literal "None" for an empty chord
//
// The syntax matches what Chord.Format produces with the Names table,
// so formatted chords parse back to an equal value.
func ParseChord(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}
	if strings.EqualFold(spec, "none") {
		return Chord{}, nil
	}

	// A single character stands for itself, including '+'.
	if utf8.RuneCountInString(spec) == 1 {
		return parseKeyPart(spec, ModNone)
	}

	parts := strings.Split(spec, "+")
	keyPart := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]

	// A trailing separator means the bound key is '+' itself, as in
	// "Ctrl++".
	if keyPart == "" && len(modParts) > 0 {
		keyPart = "+"
		modParts = modParts[:len(modParts)-1]
	}

	var mods Modifier
	for _, p := range modParts {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyPart(keyPart, mods)
}

// parseKeyPart parses the final key component of a specification.
func parseKeyPart(keyPart string, mods Modifier) (Chord, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Chord{}, ErrInvalidSpec
	}

	if k := FromName(keyPart); k != KeyNone {
		return NewChord(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}
	r := runes[0]
	if !unicode.IsPrint(r) || r == ' ' {
		return Chord{}, fmt.Errorf("%w: unprintable key %q", ErrInvalidSpec, keyPart)
	}
	return NewRuneChord(r, mods), nil
}

// MustParseChord parses a chord specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParseChord(spec string) Chord {
	c, err := ParseChord(spec)
	if err != nil {
		panic("invalid chord specification: " + spec + ": " + err.Error())
	}
	return c
}
