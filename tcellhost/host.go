// Package tcellhost runs keybind widgets in a terminal. It owns a
// tcell screen, translates terminal events into input snapshots, and
// drives a frame loop: one frame per terminal event, with a vertical
// top-down layout and simple painted buttons and labels.
package tcellhost

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/keybind"
	"github.com/dshills/keybind/input"
	"github.com/dshills/keybind/internal/applog"
)

// mapStore is the frame-surviving widget state store.
type mapStore map[string]bool

func (s mapStore) Bool(id string) bool     { return s[id] }
func (s mapStore) SetBool(id string, v bool) { s[id] = v }

// Host owns the terminal screen and the per-widget persistent state.
type Host struct {
	screen  tcell.Screen
	store   mapStore
	track   pointerTracker
	repeats repeatDetector
	log     *applog.Logger
}

// New creates a host on the real terminal.
func New() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a host on a caller-supplied screen, such as a
// tcell simulation screen in tests.
func NewWithScreen(screen tcell.Screen) *Host {
	return &Host{
		screen: screen,
		store:  make(mapStore),
		log:    applog.Nop(),
	}
}

// WithLogger sets the logger for frame loop diagnostics.
func (h *Host) WithLogger(log *applog.Logger) *Host {
	h.log = log.WithComponent("tcellhost")
	return h
}

// Init prepares the terminal and enables mouse reporting, which the
// widgets need for activation and pointer capture.
func (h *Host) Init() error {
	if err := h.screen.Init(); err != nil {
		return err
	}
	h.screen.EnableMouse()
	return nil
}

// Close restores the terminal.
func (h *Host) Close() {
	h.screen.Fini()
}

// Wake forces a frame with no input. Background goroutines call it
// after changing state the next render should pick up.
func (h *Host) Wake() {
	_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Run drives the frame loop until render returns false or the screen
// is torn down. Each terminal event produces one frame; the first
// frame renders before any input arrives.
func (h *Host) Run(render func(*Frame) bool) {
	var events []input.Event
	for {
		h.screen.Clear()
		frame := &Frame{host: h, in: input.NewState(events...)}
		if !render(frame) {
			h.log.Debug("render requested stop")
			return
		}
		h.screen.Show()

		ev := h.screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			kev := translateKey(e)
			if kev.Chord().IsNone() {
				// Unmapped terminal key; nothing a binding could hold.
				h.log.Debug("dropping unmapped key event")
				events = nil
				break
			}
			kev.Repeat = h.repeats.observe(kev, e.When())
			events = []input.Event{input.KeyDown(kev)}
		case *tcell.EventMouse:
			events = h.track.translate(e)
		case *tcell.EventResize:
			h.screen.Sync()
			events = nil
		case nil:
			// Screen was finalized.
			return
		default:
			events = nil
		}
	}
}

// Frame is one frame of the host's UI. It implements the widget's UI
// contract with a single-column layout growing downward from the top
// left corner.
type Frame struct {
	host  *Host
	in    *input.State
	nextY int
}

// Input returns the frame's input snapshot.
func (f *Frame) Input() *input.State { return f.in }

// Memory returns the host's persistent widget state.
func (f *Frame) Memory() keybind.Store { return f.host.store }

// Allocate reserves the next rows of the column.
func (f *Frame) Allocate(w, h int) keybind.Rect {
	r := keybind.Rect{X: 0, Y: f.nextY, W: w, H: h}
	f.nextY += h
	return r
}

// PaintButton draws the button bracketed, reverse video while active.
func (f *Frame) PaintButton(r keybind.Rect, text string, active bool) {
	style := tcell.StyleDefault
	if active {
		style = style.Reverse(true)
	}
	f.putString(r.X, r.Y, padButton(text, r.W), style)
}

// PaintLabel draws plain text.
func (f *Frame) PaintLabel(r keybind.Rect, text string) {
	f.putString(r.X, r.Y, text, tcell.StyleDefault)
}

// Text allocates a row and draws plain text in it. Demo screens use it
// for headings and status lines between widgets.
func (f *Frame) Text(text string) {
	r := f.Allocate(runewidth.StringWidth(text), 1)
	f.putString(r.X, r.Y, text, tcell.StyleDefault)
}

// Space allocates an empty row.
func (f *Frame) Space() {
	f.Allocate(0, 1)
}

func (f *Frame) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		f.host.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// padButton centers the text in the button width with the padding the
// widget allocated for it.
func padButton(text string, w int) string {
	pad := w - runewidth.StringWidth(text)
	left := pad / 2
	out := make([]rune, 0, w)
	for i := 0; i < left; i++ {
		out = append(out, ' ')
	}
	out = append(out, []rune(text)...)
	for i := 0; i < pad-left; i++ {
		out = append(out, ' ')
	}
	return string(out)
}
