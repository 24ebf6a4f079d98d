// Package core provides the primitives shared by the simulation and the
// terminal platform: world-space boxes and overlap tests, screen cells,
// normalized input and runtime configuration.
// It has no external dependencies so the simulation stays pure and testable.
package core

// Box is an axis-aligned bounding box in world units.
// Both axes are half-open: [LowX, HighX) x [LowY, HighY).
type Box struct {
	LowX, LowY   float64
	HighX, HighY float64
}

// NewBox builds a box from a top-left corner and a size.
func NewBox(x, y, w, h float64) Box {
	return Box{LowX: x, LowY: y, HighX: x + w, HighY: y + h}
}

// Bounds lets a bare Box be passed wherever a Bounded is expected.
func (b Box) Bounds() Box {
	return b
}

// Width returns HighX - LowX.
func (b Box) Width() float64 {
	return b.HighX - b.LowX
}

// Height returns HighY - LowY.
func (b Box) Height() float64 {
	return b.HighY - b.LowY
}

// Empty reports whether the box covers no area.
func (b Box) Empty() bool {
	return b.HighX <= b.LowX || b.HighY <= b.LowY
}

// Center returns the midpoint of the box.
func (b Box) Center() (float64, float64) {
	return (b.LowX + b.HighX) / 2, (b.LowY + b.HighY) / 2
}

// Intersects reports whether the two half-open boxes share any point.
// Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	return max(b.LowX, o.LowX) < min(b.HighX, o.HighX) &&
		max(b.LowY, o.LowY) < min(b.HighY, o.HighY)
}

// Bounded is anything with a bounding box.
// Implementations with pointer receivers must return an empty Box for a nil
// receiver so that stale references never collide.
type Bounded interface {
	Bounds() Box
}

// Overlaps is the collision test used by every entity.
// It is symmetric and returns false when either side is nil.
func Overlaps(a, b Bounded) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Bounds().Intersects(b.Bounds())
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
