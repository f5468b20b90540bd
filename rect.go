package keybind

import "github.com/dshills/keybind/mouse"

// Rect is a screen region in cell coordinates, allocated by the host's
// layout pass.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Contains reports whether a position falls inside the rectangle.
func (r Rect) Contains(p mouse.Position) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
