package key

import (
	"fmt"
	"strings"
)

// Key identifies a logical keyboard key.
// Character keys use KeyRune with the character carried separately.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeySpace is the space bar. Space is a special key rather than a
	// rune so that it has a visible display name.
	KeySpace

	// KeyRune is used for character keys (letters, digits, punctuation).
	// The character itself is carried in the Rune field of Chord or Event.
	KeyRune
)

// keyNames holds the canonical display name for each key.
var keyNames = [...]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
	KeySpace:     "Space",
	KeyRune:      "Rune",
}

// String returns the canonical display name for the key.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// IsFunctionKey returns true for F1 through F12.
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true for the four arrow keys.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// keyAliases maps lowercase names and common aliases to keys.
var keyAliases = map[string]Key{
	"esc":    KeyEscape,
	"return": KeyEnter,
	"cr":     KeyEnter,
	"bs":     KeyBackspace,
	"del":    KeyDelete,
	"ins":    KeyInsert,
	"pgup":   KeyPageUp,
	"pgdn":   KeyPageDown,
}

// keyNameLookup is built from keyNames on first use.
var keyNameLookup map[string]Key

func init() {
	keyNameLookup = make(map[string]Key, len(keyNames)+len(keyAliases))
	for k, name := range keyNames {
		if Key(k) == KeyNone || Key(k) == KeyRune {
			continue
		}
		keyNameLookup[strings.ToLower(name)] = Key(k)
	}
	for alias, k := range keyAliases {
		keyNameLookup[alias] = k
	}
}

// FromName returns the Key for a given display name or alias
// (case-insensitive). Returns KeyNone if the name is not recognized.
func FromName(name string) Key {
	if k, ok := keyNameLookup[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return KeyNone
}
