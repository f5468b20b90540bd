package keybind

import (
	"testing"

	"github.com/dshills/keybind/bind"
	"github.com/dshills/keybind/input"
	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/mouse"
)

// fakeStore is an in-memory Store that counts writes.
type fakeStore struct {
	flags  map[string]bool
	writes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{flags: make(map[string]bool)}
}

func (s *fakeStore) Bool(id string) bool { return s.flags[id] }

func (s *fakeStore) SetBool(id string, v bool) {
	s.flags[id] = v
	s.writes++
}

// paintedButton records one PaintButton call.
type paintedButton struct {
	rect   Rect
	text   string
	active bool
}

// fakeUI is a minimal host for driving the widget in tests: a vertical
// layout at the origin, recording paints.
type fakeUI struct {
	in      *input.State
	mem     *fakeStore
	nextY   int
	buttons []paintedButton
	labels  []Rect
}

func newFrame(mem *fakeStore, events ...input.Event) *fakeUI {
	return &fakeUI{in: input.NewState(events...), mem: mem}
}

func (u *fakeUI) Input() *input.State { return u.in }
func (u *fakeUI) Memory() Store       { return u.mem }

func (u *fakeUI) Allocate(w, h int) Rect {
	r := Rect{X: 0, Y: u.nextY, W: w, H: h}
	u.nextY += h
	return r
}

func (u *fakeUI) PaintButton(r Rect, text string, active bool) {
	u.buttons = append(u.buttons, paintedButton{rect: r, text: text, active: active})
}

func (u *fakeUI) PaintLabel(r Rect, _ string) {
	u.labels = append(u.labels, r)
}

// click produces a press and release of a button at a position.
func click(b mouse.Button, pos mouse.Position) []input.Event {
	return []input.Event{input.ButtonDown(b, pos), input.ButtonUp(b, pos)}
}

const testID = "test-keybind"

func TestIdleClickStartsListening(t *testing.T) {
	var sc bind.Shortcut
	w := New(&sc, testID)
	mem := newFakeStore()

	// Empty shortcut renders "None": button is 4 cells of text plus
	// padding, at the origin.
	ui := newFrame(mem, click(mouse.ButtonLeft, mouse.Position{X: 1, Y: 0})...)
	resp := w.Render(ui)

	if !resp.Clicked {
		t.Error("response should report the click")
	}
	if resp.Changed {
		t.Error("activating should not change the binding")
	}
	if !mem.Bool(testID) {
		t.Error("listening flag should be set")
	}
	if len(ui.buttons) != 1 || !ui.buttons[0].active {
		t.Error("button should paint as active once listening")
	}
}

func TestClickOnWidgetTogglesOff(t *testing.T) {
	var sc bind.Shortcut
	w := New(&sc, testID)
	mem := newFakeStore()
	mem.flags[testID] = true

	resp := w.Render(newFrame(mem, click(mouse.ButtonLeft, mouse.Position{X: 1, Y: 0})...))

	if mem.Bool(testID) {
		t.Error("clicking the widget while listening should stop listening")
	}
	if resp.Changed {
		t.Error("toggling off should not change the binding")
	}
}

func TestClickElsewhereCancels(t *testing.T) {
	sc := bind.NewShortcut(key.MustParseChord("Ctrl+S"), mouse.ButtonNone)
	w := New(&sc, testID)
	mem := newFakeStore()
	mem.flags[testID] = true

	resp := w.Render(newFrame(mem, click(mouse.ButtonLeft, mouse.Position{X: 50, Y: 9})...))

	if mem.Bool(testID) {
		t.Error("a click elsewhere should stop listening")
	}
	if resp.Changed {
		t.Error("cancelling should not change the binding")
	}
	if sc.Keyboard != key.MustParseChord("Ctrl+S") {
		t.Errorf("binding should be untouched, got %+v", sc)
	}
}

func TestCaptureKeyboardCommit(t *testing.T) {
	var sc bind.Shortcut
	w := New(&sc, testID)
	mem := newFakeStore()
	mem.flags[testID] = true

	resp := w.Render(newFrame(mem, input.KeyDown(key.NewRuneEvent('d', key.ModCtrl|key.ModShift))))

	if !resp.Changed {
		t.Error("capture should report changed")
	}
	if mem.Bool(testID) {
		t.Error("capture should stop listening")
	}
	want := key.MustParseChord("Ctrl+Shift+D")
	if sc.Keyboard != want {
		t.Errorf("captured chord = %+v, want %+v", sc.Keyboard, want)
	}
	if sc.Pointer != mouse.ButtonNone {
		t.Errorf("pointer slot should stay empty, got %v", sc.Pointer)
	}
}

func TestCaptureMouseCommit(t *testing.T) {
	sc := bind.NewShortcut(key.MustParseChord("Ctrl+S"), mouse.ButtonNone)
	w := New(&sc, testID)
	mem := newFakeStore()
	mem.flags[testID] = true

	resp := w.Render(newFrame(mem, input.ButtonDown(mouse.ButtonMiddle, mouse.Position{X: 40, Y: 3})))

	if !resp.Changed {
		t.Error("mouse capture should report changed")
	}
	if !sc.Keyboard.IsNone() {
		t.Errorf("keyboard slot should be cleared on pointer capture, got %+v", sc.Keyboard)
	}
	if sc.Pointer != mouse.ButtonMiddle {
		t.Errorf("pointer = %v, want Middle", sc.Pointer)
	}
}

func TestCaptureKeyboardPrecedence(t *testing.T) {
	var sc bind.Shortcut
	w := New(&sc, testID)
	mem := newFakeStore()
	mem.flags[testID] = true

	// Pointer press is delivered first, but the keyboard scan wins.
	w.Render(newFrame(mem,
		input.ButtonDown(mouse.ButtonMiddle, mouse.Position{X: 40, Y: 3}),
		input.KeyDown(key.NewRuneEvent('x', key.ModNone)),
	))

	if sc.Pointer != mouse.ButtonNone {
		t.Errorf("pointer should not be captured when a key press qualifies, got %v", sc.Pointer)
	}
	if sc.Keyboard != key.NewRuneChord('x', key.ModNone) {
		t.Errorf("keyboard = %+v, want X", sc.Keyboard)
	}
}

func TestPrimaryButtonNeverCaptured(t *testing.T) {
	var sc bind.Shortcut
	w := New(&sc, testID)
	mem := newFakeStore()
	mem.flags[testID] = true

	// A bare primary press is not a click and does not qualify for
	// capture: the widget keeps listening.
	resp := w.Render(newFrame(mem, input.ButtonDown(mouse.ButtonLeft, mouse.Position{X: 50, Y: 9})))

	if resp.Changed {
		t.Error("primary press must not commit")
	}
	if !sc.IsNone() {
		t.Errorf("binding should stay empty, got %+v", sc)
	}
	if !mem.Bool(testID) {
		t.Error("widget should remain listening")
	}
}

func TestKeyEventWithoutIdentityIgnored(t *testing.T) {
	sc := bind.NewShortcut(key.MustParseChord("Ctrl+S"), mouse.ButtonNone)
	w := New(&sc, testID)
	mem := newFakeStore()
	mem.flags[testID] = true

	// A key-down whose chord is empty, as a host may deliver for a
	// key it cannot map, must not commit or touch the binding.
	resp := w.Render(newFrame(mem, input.KeyDown(key.NewEvent(key.KeyNone, key.ModCtrl))))

	if resp.Changed {
		t.Error("identity-less key event must not commit")
	}
	if sc.Keyboard != key.MustParseChord("Ctrl+S") {
		t.Errorf("binding should be untouched, got %+v", sc)
	}
	if !mem.Bool(testID) {
		t.Error("widget should remain listening")
	}
}

func TestRepeatKeyExcluded(t *testing.T) {
	var sc bind.Shortcut
	w := New(&sc, testID)
	mem := newFakeStore()
	mem.flags[testID] = true

	ev := key.NewRuneEvent('d', key.ModNone)
	ev.Repeat = true
	resp := w.Render(newFrame(mem, input.KeyDown(ev)))

	if resp.Changed {
		t.Error("auto-repeat must not commit")
	}
	if !mem.Bool(testID) {
		t.Error("widget should remain listening")
	}
}

func TestResetKey(t *testing.T) {
	sc := bind.NewShortcut(key.MustParseChord("Ctrl+S"), mouse.ButtonNone)
	resetTo := bind.NewShortcut(key.NewRuneChord('x', key.ModNone), mouse.ButtonNone)
	w := New(&sc, testID).
		WithResetKey(key.NewChord(key.KeyEscape, key.ModNone)).
		WithReset(resetTo)
	mem := newFakeStore()
	mem.flags[testID] = true

	resp := w.Render(newFrame(mem, input.KeyDown(key.NewEvent(key.KeyEscape, key.ModNone))))

	if !resp.Changed {
		t.Error("reset should report changed")
	}
	if sc != resetTo {
		t.Errorf("binding = %+v, want reset value %+v", sc, resetTo)
	}
	if mem.Bool(testID) {
		t.Error("reset should stop listening")
	}
}

func TestResetWinsOverCapture(t *testing.T) {
	var sc bind.Shortcut
	w := New(&sc, testID).WithResetKey(key.NewChord(key.KeyEscape, key.ModNone))
	mem := newFakeStore()
	mem.flags[testID] = true

	// Escape would also qualify as a capture; reset takes it.
	w.Render(newFrame(mem, input.KeyDown(key.NewEvent(key.KeyEscape, key.ModNone))))

	if !sc.IsNone() {
		t.Errorf("binding should be the reset snapshot (empty), got %+v", sc)
	}
}

func TestDefaultResetIsConstructionSnapshot(t *testing.T) {
	sc := bind.NewShortcut(key.MustParseChord("Ctrl+S"), mouse.ButtonNone)
	orig := sc
	w := New(&sc, testID).WithResetKey(key.NewChord(key.KeyEscape, key.ModNone))
	mem := newFakeStore()

	// Capture something new, then reset.
	mem.flags[testID] = true
	w.Render(newFrame(mem, input.KeyDown(key.NewRuneEvent('z', key.ModNone))))
	if sc == orig {
		t.Fatal("capture should have changed the binding")
	}

	mem.flags[testID] = true
	w.Render(newFrame(mem, input.KeyDown(key.NewEvent(key.KeyEscape, key.ModNone))))
	if sc != orig {
		t.Errorf("reset should restore the construction snapshot, got %+v", sc)
	}
}

func TestStoreWrittenOnlyOnTransition(t *testing.T) {
	var sc bind.Shortcut
	w := New(&sc, testID)
	mem := newFakeStore()

	// Idle frame with no input: no writes.
	w.Render(newFrame(mem))
	if mem.writes != 0 {
		t.Errorf("idle frame wrote the store %d times", mem.writes)
	}

	// Listening frame with nothing qualifying: still no writes.
	mem.flags[testID] = true
	w.Render(newFrame(mem))
	if mem.writes != 0 {
		t.Errorf("uneventful listening frame wrote the store %d times", mem.writes)
	}

	// A transition writes exactly once.
	w.Render(newFrame(mem, input.KeyDown(key.NewRuneEvent('a', key.ModNone))))
	if mem.writes != 1 {
		t.Errorf("transition wrote the store %d times, want 1", mem.writes)
	}
}

func TestLayoutAndDescription(t *testing.T) {
	sc := bind.NewShortcut(key.MustParseChord("Ctrl+S"), mouse.ButtonNone)
	w := New(&sc, testID).WithText("Save the file")
	ui := newFrame(newFakeStore())

	resp := w.Render(ui)

	// "Ctrl+S" is 6 cells; the button adds a cell of padding per side.
	wantBtn := Rect{X: 0, Y: 0, W: 8, H: 1}
	if len(ui.buttons) != 1 || ui.buttons[0].rect != wantBtn {
		t.Errorf("button rect = %+v, want %+v", ui.buttons, wantBtn)
	}
	// Label follows after one cell of spacing.
	wantLabel := Rect{X: 9, Y: 0, W: 13, H: 1}
	if len(ui.labels) != 1 || ui.labels[0] != wantLabel {
		t.Errorf("label rect = %+v, want %+v", ui.labels, wantLabel)
	}
	if resp.Rect.W != 22 {
		t.Errorf("allocated width = %d, want 22", resp.Rect.W)
	}
	if resp.Description != "Ctrl+S. Save the file" {
		t.Errorf("Description = %q", resp.Description)
	}

	// Without a label the description is just the binding text.
	resp = New(&sc, "other").Render(newFrame(newFakeStore()))
	if resp.Description != "Ctrl+S" {
		t.Errorf("Description = %q, want %q", resp.Description, "Ctrl+S")
	}
}

func TestTwoWidgetsIndependent(t *testing.T) {
	var a, b bind.Shortcut
	wa := New(&a, "widget-a")
	wb := New(&b, "widget-b")
	mem := newFakeStore()

	// Activate only the first widget; both render on the same frame
	// sequence.
	ui := newFrame(mem, click(mouse.ButtonLeft, mouse.Position{X: 1, Y: 0})...)
	wa.Render(ui)
	wb.Render(ui)

	if !mem.Bool("widget-a") {
		t.Error("first widget should be listening")
	}
	if mem.Bool("widget-b") {
		t.Error("second widget saw a click elsewhere and must stay idle")
	}

	// A key press commits only the listening widget.
	ui = newFrame(mem, input.KeyDown(key.NewRuneEvent('k', key.ModNone)))
	wa.Render(ui)
	wb.Render(ui)

	if a.Keyboard != key.NewRuneChord('k', key.ModNone) {
		t.Errorf("first widget should capture, got %+v", a)
	}
	if !b.IsNone() {
		t.Errorf("idle widget must not capture, got %+v", b)
	}
}
