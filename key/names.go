package key

import "strings"

// ModifierNames is a display-name table for modifier keys. Formatting
// always emits modifiers in Ctrl, Alt, Shift, Meta order; when the macOS
// flag is set, Alt renders as MacAlt and Meta as MacCmd.
type ModifierNames struct {
	Ctrl   string
	Alt    string
	Shift  string
	Meta   string
	MacAlt string
	MacCmd string

	// Concat separates the parts of a formatted chord.
	// Empty for symbol tables so "⌃⇧D" reads as one glyph run.
	Concat string
}

// Names is the default table using full modifier names.
var Names = &ModifierNames{
	Ctrl:   "Ctrl",
	Alt:    "Alt",
	Shift:  "Shift",
	Meta:   "Meta",
	MacAlt: "Option",
	MacCmd: "Cmd",
	Concat: "+",
}

// Symbols is a compact table using modifier glyphs.
var Symbols = &ModifierNames{
	Ctrl:   "⌃",
	Alt:    "⎇",
	Shift:  "⇧",
	Meta:   "❖",
	MacAlt: "⌥",
	MacCmd: "⌘",
	Concat: "",
}

// Format renders a modifier combination using this table.
// Returns an empty string for ModNone.
func (n *ModifierNames) Format(m Modifier, isMac bool) string {
	if m.IsEmpty() {
		return ""
	}

	alt, meta := n.Alt, n.Meta
	if isMac {
		alt, meta = n.MacAlt, n.MacCmd
	}

	parts := make([]string, 0, 4)
	if m.Has(ModCtrl) {
		parts = append(parts, n.Ctrl)
	}
	if m.Has(ModAlt) {
		parts = append(parts, alt)
	}
	if m.Has(ModShift) {
		parts = append(parts, n.Shift)
	}
	if m.Has(ModMeta) {
		parts = append(parts, meta)
	}
	return strings.Join(parts, n.Concat)
}
