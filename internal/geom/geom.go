// Package geom provides the rectangle arithmetic the placement pipeline
// runs on. All coordinates live in the X11 root coordinate space, which
// is 16-bit signed on the wire.
package geom

// Point is a position in the root coordinate space.
type Point struct {
	X, Y int16
}

// Box2D is an axis-aligned rectangle identified by its min and max
// corners. Min.X <= Max.X and Min.Y <= Max.Y must hold; degenerate
// (zero-area) boxes are legal.
type Box2D struct {
	Min, Max Point
}

// FromOriginSize builds a box from a top-left corner and a size.
func FromOriginSize(x, y, w, h int16) Box2D {
	return Box2D{
		Min: Point{X: x, Y: y},
		Max: Point{X: x + w, Y: y + h},
	}
}

func (b Box2D) Width() int16  { return b.Max.X - b.Min.X }
func (b Box2D) Height() int16 { return b.Max.Y - b.Min.Y }

// Empty reports whether the box has no area.
func (b Box2D) Empty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// Translate returns the box shifted by (dx, dy).
func (b Box2D) Translate(dx, dy int16) Box2D {
	return Box2D{
		Min: Point{X: b.Min.X + dx, Y: b.Min.Y + dy},
		Max: Point{X: b.Max.X + dx, Y: b.Max.Y + dy},
	}
}

// Intersection returns the overlapping region of two boxes. The second
// return value is false when the boxes share no area.
func (b Box2D) Intersection(o Box2D) (Box2D, bool) {
	isect := Box2D{
		Min: Point{X: maxi16(b.Min.X, o.Min.X), Y: maxi16(b.Min.Y, o.Min.Y)},
		Max: Point{X: mini16(b.Max.X, o.Max.X), Y: mini16(b.Max.Y, o.Max.Y)},
	}
	if isect.Empty() {
		return Box2D{}, false
	}
	return isect, true
}

// Intersects reports whether two boxes share any area.
func (b Box2D) Intersects(o Box2D) bool {
	_, ok := b.Intersection(o)
	return ok
}

// SideOffsets are the decorative frame insets around a window's content
// box: left, top, right, bottom. All zero when the window reports no
// frame.
type SideOffsets struct {
	Left, Top, Right, Bottom int16
}

// Unframe grows a content box outward by the frame extents, yielding the
// window's full on-screen extent including decorations.
func Unframe(b Box2D, off SideOffsets) Box2D {
	return Box2D{
		Min: Point{X: b.Min.X - off.Left, Y: b.Min.Y - off.Top},
		Max: Point{X: b.Max.X + off.Right, Y: b.Max.Y + off.Bottom},
	}
}

// Reframe shrinks a decorated box inward by the frame extents, the exact
// inverse of Unframe. Geometry requests address content coordinates, so
// every planned decorated rectangle is reframed before it is applied.
func Reframe(b Box2D, off SideOffsets) Box2D {
	return Box2D{
		Min: Point{X: b.Min.X + off.Left, Y: b.Min.Y + off.Top},
		Max: Point{X: b.Max.X - off.Right, Y: b.Max.Y - off.Bottom},
	}
}

// DivFloor divides a by b rounding toward negative infinity. Go's /
// truncates toward zero, which disagrees with floor for negative spans.
func DivFloor(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func maxi16(a, b int16) int16 {
	if a > b {
		return a
	}
	return b
}

func mini16(a, b int16) int16 {
	if a < b {
		return a
	}
	return b
}
