package tcellhost

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind/input"
	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/mouse"
)

// repeatInterval is the longest gap between two presses of the same
// key that still reads as terminal auto-repeat. Typical repeat rates
// sit around 30 to 40 ms.
const repeatInterval = 75 * time.Millisecond

// repeatDetector infers auto-repeat for terminals, which do not report
// it: the same key recurring within the repeat interval is flagged.
type repeatDetector struct {
	last key.Event
	at   time.Time
}

func (d *repeatDetector) observe(ev key.Event, when time.Time) bool {
	same := ev.Key == d.last.Key && ev.Rune == d.last.Rune && ev.Mods == d.last.Mods
	repeat := same && when.Sub(d.at) <= repeatInterval
	d.last = ev
	d.at = when
	return repeat
}

// translateKey converts a terminal key event. Repeat is left false
// here; the host's repeatDetector sets it. Control letters arrive as
// dedicated key codes and are unfolded back into letter plus Ctrl so
// a captured chord formats as "Ctrl+S" rather than an opaque code.
func translateKey(ev *tcell.EventKey) key.Event {
	mods := translateMods(ev.Modifiers())
	k := ev.Key()

	switch k {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return key.NewEvent(key.KeySpace, mods)
		}
		return key.NewRuneEvent(ev.Rune(), mods)
	case tcell.KeyEscape:
		return key.NewEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewEvent(key.KeyDelete, mods)
	case tcell.KeyInsert:
		return key.NewEvent(key.KeyInsert, mods)
	case tcell.KeyHome:
		return key.NewEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewEvent(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewEvent(key.KeyRight, mods)
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.NewEvent(key.KeyF1+key.Key(k-tcell.KeyF1), mods)
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods|key.ModCtrl)
	}
	return key.NewEvent(key.KeyNone, mods)
}

func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}

// pointerButtons lists the mask bits the host tracks, in the order
// their transitions are emitted within one terminal event.
var pointerButtons = []struct {
	mask   tcell.ButtonMask
	button mouse.Button
}{
	{tcell.ButtonPrimary, mouse.ButtonLeft},
	{tcell.ButtonSecondary, mouse.ButtonRight},
	{tcell.ButtonMiddle, mouse.ButtonMiddle},
	{tcell.Button4, mouse.ButtonBack},
	{tcell.Button5, mouse.ButtonForward},
}

// pointerTracker derives press and release events from the cumulative
// button mask terminals report on every mouse event.
type pointerTracker struct {
	held tcell.ButtonMask
}

func (t *pointerTracker) translate(ev *tcell.EventMouse) []input.Event {
	x, y := ev.Position()
	pos := mouse.Position{X: x, Y: y}

	var cur tcell.ButtonMask
	for _, pb := range pointerButtons {
		cur |= ev.Buttons() & pb.mask
	}

	var out []input.Event
	for _, pb := range pointerButtons {
		now := cur&pb.mask != 0
		was := t.held&pb.mask != 0
		switch {
		case now && !was:
			out = append(out, input.ButtonDown(pb.button, pos))
		case !now && was:
			out = append(out, input.ButtonUp(pb.button, pos))
		}
	}
	t.held = cur
	return out
}
