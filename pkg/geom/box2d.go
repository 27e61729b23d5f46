// Package geom provides the spatial primitives used by feature records:
// an axis-aligned bounding rectangle (Box2D) and a small set of geometry
// shapes that answer a bounding-box query.
package geom

// Box2D is an axis-aligned bounding rectangle.
//
// A box is either valid (MinX <= MaxX and MinY <= MaxY) or empty. The
// empty state is represented by an inverted range (see EmptyBox2D) so that
// it can never be mistaken for a legitimate degenerate rectangle at the
// origin.
type Box2D struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// NewBox2D returns a box spanning the given corners. Coordinates are
// normalized so that min <= max on each axis.
func NewBox2D(minx, miny, maxx, maxy float64) Box2D {
	var b Box2D
	b.Init(minx, miny, maxx, maxy)
	return b
}

// EmptyBox2D returns the empty sentinel box. It is invalid and contributes
// nothing when unioned into another box.
func EmptyBox2D() Box2D {
	return Box2D{MinX: 0, MinY: 0, MaxX: -1, MaxY: -1}
}

// Valid reports whether the box describes a real (possibly zero-area)
// rectangle.
func (b Box2D) Valid() bool {
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// Init sets the box from four scalars, normalizing so min <= max on each
// axis.
func (b *Box2D) Init(minx, miny, maxx, maxy float64) {
	if minx > maxx {
		minx, maxx = maxx, minx
	}
	if miny > maxy {
		miny, maxy = maxy, miny
	}
	b.MinX, b.MinY, b.MaxX, b.MaxY = minx, miny, maxx, maxy
}

// ExpandToInclude grows the box to cover other. Expanding an invalid box
// adopts other; expanding by an invalid box is a no-op, so the empty
// sentinel never corrupts a real range.
func (b *Box2D) ExpandToInclude(other Box2D) {
	if !other.Valid() {
		return
	}
	if !b.Valid() {
		*b = other
		return
	}
	if other.MinX < b.MinX {
		b.MinX = other.MinX
	}
	if other.MinY < b.MinY {
		b.MinY = other.MinY
	}
	if other.MaxX > b.MaxX {
		b.MaxX = other.MaxX
	}
	if other.MaxY > b.MaxY {
		b.MaxY = other.MaxY
	}
}

// ExpandToIncludePoint grows the box to cover the point (x, y). An invalid
// box becomes the zero-area box at the point.
func (b *Box2D) ExpandToIncludePoint(x, y float64) {
	b.ExpandToInclude(Box2D{MinX: x, MinY: y, MaxX: x, MaxY: y})
}

// Width returns the horizontal extent, or 0 for an invalid box.
func (b Box2D) Width() float64 {
	if !b.Valid() {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the vertical extent, or 0 for an invalid box.
func (b Box2D) Height() float64 {
	if !b.Valid() {
		return 0
	}
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the box.
func (b Box2D) Center() (x, y float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Intersects reports whether the two boxes overlap or touch. An invalid
// box intersects nothing.
func (b Box2D) Intersects(other Box2D) bool {
	if !b.Valid() || !other.Valid() {
		return false
	}
	return b.MinX <= other.MaxX && b.MaxX >= other.MinX &&
		b.MinY <= other.MaxY && b.MaxY >= other.MinY
}

// Contains reports whether the point (x, y) lies in the box.
func (b Box2D) Contains(x, y float64) bool {
	return b.Valid() &&
		x >= b.MinX && x <= b.MaxX &&
		y >= b.MinY && y <= b.MaxY
}
