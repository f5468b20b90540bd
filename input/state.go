// Package input models the per-frame input snapshot a host hands to the
// capture widget and to binding trigger tests: an ordered list of key and
// pointer events with a consume operation, so a matched event is not
// double-handled by other consumers in the same frame.
package input

import (
	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/mouse"
)

// Kind identifies the type of an input event.
type Kind uint8

const (
	// KindNone is the zero event.
	KindNone Kind = iota
	// KindKeyDown is a key press (possibly auto-repeated).
	KindKeyDown
	// KindKeyUp is a key release.
	KindKeyUp
	// KindButtonDown is a pointer button press.
	KindButtonDown
	// KindButtonUp is a pointer button release.
	KindButtonUp
)

// Event is a single input event within a frame snapshot.
type Event struct {
	// Kind identifies the event type.
	Kind Kind

	// Key holds the key identity for key events.
	Key key.Event

	// Button is the pointer button for pointer events.
	Button mouse.Button

	// Pos is the pointer position for pointer events.
	Pos mouse.Position
}

// KeyDown creates a key press event.
func KeyDown(e key.Event) Event {
	return Event{Kind: KindKeyDown, Key: e}
}

// KeyUp creates a key release event.
func KeyUp(e key.Event) Event {
	return Event{Kind: KindKeyUp, Key: e}
}

// ButtonDown creates a pointer button press event.
func ButtonDown(b mouse.Button, pos mouse.Position) Event {
	return Event{Kind: KindButtonDown, Button: b, Pos: pos}
}

// ButtonUp creates a pointer button release event.
func ButtonUp(b mouse.Button, pos mouse.Position) Event {
	return Event{Kind: KindButtonUp, Button: b, Pos: pos}
}

// State is one frame's input snapshot. It is rebuilt by the host every
// frame and read synchronously on the UI goroutine; it performs no
// locking of its own.
type State struct {
	events   []Event
	consumed []bool
}

// NewState creates a snapshot from the frame's events, in delivery order.
func NewState(events ...Event) *State {
	return &State{
		events:   events,
		consumed: make([]bool, len(events)),
	}
}

// Events returns the frame's events in delivery order. The returned
// slice is shared; callers must not modify it.
func (s *State) Events() []Event {
	return s.events
}

// Len returns the number of events in the snapshot.
func (s *State) Len() int {
	return len(s.events)
}

// Consumed reports whether the event at index i has been consumed.
func (s *State) Consumed(i int) bool {
	return i >= 0 && i < len(s.consumed) && s.consumed[i]
}

// Consume marks the event at index i as handled so later queries skip it.
func (s *State) Consume(i int) {
	if i >= 0 && i < len(s.consumed) {
		s.consumed[i] = true
	}
}

// ConsumeChord reports whether an unconsumed, non-repeat key press
// matching the chord occurred this frame, consuming the first match so
// the same press is not detected by another binding.
func (s *State) ConsumeChord(c key.Chord) bool {
	for i, ev := range s.events {
		if s.consumed[i] || ev.Kind != KindKeyDown || ev.Key.Repeat {
			continue
		}
		if c.Matches(ev.Key) {
			s.consumed[i] = true
			return true
		}
	}
	return false
}

// KeyPressed reports whether the chord's key was pressed this frame,
// ignoring modifiers and including auto-repeat. It does not consume.
func (s *State) KeyPressed(c key.Chord) bool {
	for i, ev := range s.events {
		if s.consumed[i] || ev.Kind != KindKeyDown {
			continue
		}
		if c.SameKey(ev.Key) {
			return true
		}
	}
	return false
}

// ConsumeKey is KeyPressed with consumption: the first matching press
// is consumed so other consumers do not see it.
func (s *State) ConsumeKey(c key.Chord) bool {
	for i, ev := range s.events {
		if s.consumed[i] || ev.Kind != KindKeyDown {
			continue
		}
		if c.SameKey(ev.Key) {
			s.consumed[i] = true
			return true
		}
	}
	return false
}

// ButtonPressed reports whether the button was pressed down this frame.
// It does not consume.
func (s *State) ButtonPressed(b mouse.Button) bool {
	return s.buttonEvent(KindButtonDown, b)
}

// ButtonClicked reports whether the button was released this frame,
// which completes a click. It does not consume.
func (s *State) ButtonClicked(b mouse.Button) bool {
	return s.buttonEvent(KindButtonUp, b)
}

func (s *State) buttonEvent(kind Kind, b mouse.Button) bool {
	if b == mouse.ButtonNone {
		return false
	}
	for i, ev := range s.events {
		if !s.consumed[i] && ev.Kind == kind && ev.Button == b {
			return true
		}
	}
	return false
}
