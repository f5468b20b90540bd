package keybind

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/keybind/bind"
	"github.com/dshills/keybind/input"
	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/mouse"
)

const (
	// buttonPadding is the horizontal padding inside the button, in
	// cells on each side of the text.
	buttonPadding = 1

	// labelSpacing separates the button from its label.
	labelSpacing = 1
)

// Bindable constrains a binding value type: a plain value whose pointer
// implements bind.Bind. Value semantics let the widget snapshot the
// binding by assignment for reset-to-previous.
type Bindable[B any] interface {
	*B
	bind.Bind
}

// Keybind is the capture widget for one binding. Construct it each
// frame with New plus the With* options and call Render inside the
// host's layout pass.
type Keybind[B any, PB Bindable[B]] struct {
	bind     PB
	reset    B
	text     string
	id       string
	resetKey key.Chord
	names    *key.ModifierNames
	mac      bool
}

// New creates a widget for a binding value. id is the widget's stable
// identity: it keys the listening flag in the host's persistent store
// and must be unique among live widgets. The binding is snapshotted as
// the default reset value.
func New[B any, PB Bindable[B]](b PB, id string) *Keybind[B, PB] {
	return &Keybind[B, PB]{
		bind:  b,
		reset: *b,
		id:    id,
		names: key.Names,
	}
}

// WithText sets a label displayed to the right of the widget and used
// for accessibility. By default there is no label.
func (kb *Keybind[B, PB]) WithText(text string) *Keybind[B, PB] {
	kb.text = text
	return kb
}

// WithBind replaces the binding the widget renders and mutates.
func (kb *Keybind[B, PB]) WithBind(b PB) *Keybind[B, PB] {
	kb.bind = b
	return kb
}

// WithID replaces the widget's identity.
func (kb *Keybind[B, PB]) WithID(id string) *Keybind[B, PB] {
	kb.id = id
	return kb
}

// WithResetKey sets the key that, pressed while listening, restores the
// reset value. The zero chord disables resetting, which is the default.
func (kb *Keybind[B, PB]) WithResetKey(c key.Chord) *Keybind[B, PB] {
	kb.resetKey = c
	return kb
}

// WithReset sets the value the binding reverts to when the reset key is
// pressed. By default this is a snapshot of the binding taken by New.
func (kb *Keybind[B, PB]) WithReset(v B) *Keybind[B, PB] {
	kb.reset = v
	return kb
}

// WithModifierNames sets the modifier name table used for display.
// By default this is key.Names.
func (kb *Keybind[B, PB]) WithModifierNames(names *key.ModifierNames) *Keybind[B, PB] {
	kb.names = names
	return kb
}

// WithMac selects macOS modifier names (Cmd, Option) for display.
func (kb *Keybind[B, PB]) WithMac(mac bool) *Keybind[B, PB] {
	kb.mac = mac
	return kb
}

// ID returns the widget's identity.
func (kb *Keybind[B, PB]) ID() string {
	return kb.id
}

// Render runs one frame of the widget: layout, input handling, and
// painting. It never fails; with no qualifying input the widget simply
// keeps its state for the next frame.
//
// While listening, exactly one transition is applied per frame. A
// primary or secondary click outside the widget cancels with no
// change; otherwise the reset key is checked, and then the first
// non-repeat key press carrying a key identity, or the first press of
// a bindable mouse button, becomes the new binding. Checking reset first means it wins when it
// and a capture could both fire in the same frame.
func (kb *Keybind[B, PB]) Render(ui UI) Response {
	text := kb.bind.Format(kb.names, kb.mac)

	btnW := runewidth.StringWidth(text) + 2*buttonPadding
	totalW := btnW
	if kb.text != "" {
		totalW += labelSpacing + runewidth.StringWidth(kb.text)
	}
	rect := ui.Allocate(totalW, 1)
	btnRect := Rect{X: rect.X, Y: rect.Y, W: btnW, H: rect.H}

	in := ui.Input()
	mem := ui.Memory()
	listening := mem.Bool(kb.id)
	prev := listening

	resp := Response{Rect: rect, Description: kb.describe(text)}

	// A click completes on release. The first primary release decides:
	// inside the button it toggles listening. A bare press is not a
	// click, so it neither toggles nor cancels.
	for i, ev := range in.Events() {
		if in.Consumed(i) || ev.Kind != input.KindButtonUp || ev.Button != mouse.ButtonLeft {
			continue
		}
		if btnRect.Contains(ev.Pos) {
			resp.Clicked = true
			listening = !listening
		}
		break
	}

	if listening {
		if clickElsewhere(in, btnRect) {
			// The user clicked somewhere else; stop capturing.
			listening = false
		} else if !kb.resetKey.IsNone() && in.ConsumeKey(kb.resetKey) {
			// Reset wins when it and a capture could both fire.
			*kb.bind = kb.reset
			resp.Changed = true
			listening = false
		} else if i, chord, btn := findCapture(in); i >= 0 {
			kb.bind.Set(chord, btn)
			in.Consume(i)
			resp.Changed = true
			listening = false
		}
	}

	ui.PaintButton(btnRect, text, listening)
	if kb.text != "" {
		labelRect := Rect{
			X: btnRect.Right() + labelSpacing,
			Y: rect.Y,
			W: totalW - btnW - labelSpacing,
			H: rect.H,
		}
		ui.PaintLabel(labelRect, kb.text)
	}

	if prev != listening {
		mem.SetBool(kb.id, listening)
	}
	return resp
}

// describe composes the accessibility description.
func (kb *Keybind[B, PB]) describe(text string) string {
	if kb.text == "" {
		return text
	}
	return text + ". " + kb.text
}

// clickElsewhere reports an unconsumed click (release) of an ordinary
// pointer button outside the widget. Bindable buttons are excluded:
// pressing one anywhere is a capture, not a cancel.
func clickElsewhere(in *input.State, r Rect) bool {
	for i, ev := range in.Events() {
		if in.Consumed(i) || ev.Kind != input.KindButtonUp {
			continue
		}
		if ev.Button.Bindable() {
			continue
		}
		if !r.Contains(ev.Pos) {
			return true
		}
	}
	return false
}

// findCapture scans the frame for the first qualifying event. Keyboard
// takes precedence: the first non-repeat key press carrying a key
// identity wins; otherwise the first press of a bindable button. At
// most one slot is captured. Returns the event index, or -1 when
// nothing qualifies.
func findCapture(in *input.State) (int, key.Chord, mouse.Button) {
	for i, ev := range in.Events() {
		if in.Consumed(i) || ev.Kind != input.KindKeyDown || ev.Key.Repeat {
			continue
		}
		chord := ev.Key.Chord()
		if chord.IsNone() {
			// A key event without an identity has nothing to bind.
			continue
		}
		return i, chord, mouse.ButtonNone
	}
	for i, ev := range in.Events() {
		if in.Consumed(i) || ev.Kind != input.KindButtonDown || !ev.Button.Bindable() {
			continue
		}
		return i, key.Chord{}, ev.Button
	}
	return -1, key.Chord{}, mouse.ButtonNone
}
