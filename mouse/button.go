// Package mouse defines the pointer vocabulary used by keybind bindings:
// bindable mouse buttons with display names, and screen positions.
package mouse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownButton indicates a button name that is not recognized.
var ErrUnknownButton = errors.New("unknown mouse button")

// Button represents a mouse button that can participate in a binding.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonBack is the back navigation button (mouse button 4).
	ButtonBack
	// ButtonForward is the forward navigation button (mouse button 5).
	ButtonForward
)

// buttonNames holds the canonical display name for each button.
var buttonNames = [...]string{
	ButtonNone:    "None",
	ButtonLeft:    "Left",
	ButtonRight:   "Right",
	ButtonMiddle:  "Middle",
	ButtonBack:    "Back",
	ButtonForward: "Forward",
}

// String returns the canonical display name for the button.
func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "None"
}

// Bindable reports whether the button may be captured as a binding.
// The primary and secondary buttons are excluded so a capture widget
// remains clickable with the ordinary pointer buttons.
func (b Button) Bindable() bool {
	return b != ButtonNone && b != ButtonLeft && b != ButtonRight
}

// FromName returns the Button for a given display name
// (case-insensitive). Returns ButtonNone if the name is not recognized.
func FromName(name string) Button {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range buttonNames {
		if Button(b) != ButtonNone && strings.ToLower(n) == name {
			return Button(b)
		}
	}
	return ButtonNone
}

// ParseButton is FromName with an error for unknown names. "None" is
// valid and parses to ButtonNone.
func ParseButton(name string) (Button, error) {
	if strings.EqualFold(strings.TrimSpace(name), buttonNames[ButtonNone]) {
		return ButtonNone, nil
	}
	b := FromName(name)
	if b == ButtonNone {
		return ButtonNone, fmt.Errorf("%w: %q", ErrUnknownButton, name)
	}
	return b, nil
}

// Position represents a screen coordinate.
type Position struct {
	X int
	Y int
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}
