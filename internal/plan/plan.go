package plan

import (
	"github.com/wmplace/wmplace/internal/geom"
)

// Request is a full placement request. Horiz/Vert carry the symbolic
// specs; Width/Height (percent of the available dimension) together
// with HAlign/VAlign switch an axis to numeric mode, the way the raw
// --width/--halign flags do. A nil percent keeps the current dimension.
type Request struct {
	Horiz  Horiz
	Vert   Vert
	Width  *int
	Height *int
	HAlign HAlign
	VAlign VAlign
}

// span is a one-dimensional interval; the planner works per axis.
type span struct {
	lo, hi int16
}

// Plan computes the new decorated rectangle for a window from its
// current rectangle and the available area. Each axis is resolved
// independently.
func Plan(current, avail geom.Box2D, req Request) geom.Box2D {
	h := planHoriz(current, avail, req)
	v := planVert(current, avail, req)
	return geom.Box2D{
		Min: geom.Point{X: h.lo, Y: v.lo},
		Max: geom.Point{X: h.hi, Y: v.hi},
	}
}

func planHoriz(current, avail geom.Box2D, req Request) span {
	if req.Width != nil || req.HAlign != HAlignNone {
		w := current.Width()
		if req.Width != nil {
			w = percentOf(avail.Width(), *req.Width)
		}
		x := current.Min.X
		switch req.HAlign {
		case HAlignLeft:
			x = avail.Min.X
		case HAlignMiddle:
			x = avail.Min.X + int16(geom.DivFloor(int(avail.Width())-int(w), 2))
		case HAlignRight:
			x = avail.Max.X - w
		}
		return span{lo: x, hi: x + w}
	}

	cur := span{lo: current.Min.X, hi: current.Max.X}
	a := span{lo: avail.Min.X, hi: avail.Max.X}

	switch req.Horiz {
	case HorizFull:
		return a
	case HorizLeft25:
		return leftFraction(a, 25)
	case HorizLeft50:
		return leftFraction(a, 50)
	case HorizLeft75:
		return leftFraction(a, 75)
	case HorizRight25:
		return rightFraction(a, 25)
	case HorizRight50:
		return rightFraction(a, 50)
	case HorizRight75:
		return rightFraction(a, 75)
	case HorizLeftThird, HorizMidThird, HorizRightThird:
		return third(a, req.Horiz)
	case HorizLeft:
		return cycle(cur, leftFraction(a, 25), leftFraction(a, 50), leftFraction(a, 75))
	case HorizRight:
		return cycle(cur, rightFraction(a, 25), rightFraction(a, 50), rightFraction(a, 75))
	default:
		return cur
	}
}

func planVert(current, avail geom.Box2D, req Request) span {
	if req.Height != nil || req.VAlign != VAlignNone {
		h := current.Height()
		if req.Height != nil {
			h = percentOf(avail.Height(), *req.Height)
		}
		y := current.Min.Y
		switch req.VAlign {
		case VAlignTop:
			y = avail.Min.Y
		case VAlignMiddle:
			y = avail.Min.Y + int16(geom.DivFloor(int(avail.Height())-int(h), 2))
		case VAlignBottom:
			y = avail.Max.Y - h
		}
		return span{lo: y, hi: y + h}
	}

	a := span{lo: avail.Min.Y, hi: avail.Max.Y}

	switch req.Vert {
	case VertFull:
		return a
	case VertTop:
		return leftFraction(a, 50)
	case VertBottom:
		return rightFraction(a, 50)
	default:
		return span{lo: current.Min.Y, hi: current.Max.Y}
	}
}

// cycle advances the three-state 50 -> 25 -> 75 -> 50 rotation by
// comparing the current interval against the fixed-fraction candidates.
// A window not currently in any recognized state resets to 50.
func cycle(cur, c25, c50, c75 span) span {
	switch cur {
	case c50:
		return c25
	case c25:
		return c75
	default:
		return c50
	}
}

// leftFraction takes pct percent of the interval anchored at its low
// edge.
func leftFraction(a span, pct int) span {
	return span{lo: a.lo, hi: a.lo + percentOf(int16(a.hi-a.lo), pct)}
}

// rightFraction takes pct percent of the interval anchored at its high
// edge.
func rightFraction(a span, pct int) span {
	return span{lo: a.hi - percentOf(int16(a.hi-a.lo), pct), hi: a.hi}
}

// third splits the interval into three equal floor-divided bands. The
// right band keeps the interval's high edge so no pixel column is lost
// to rounding.
func third(a span, h Horiz) span {
	t := int16(geom.DivFloor(int(a.hi-a.lo), 3))
	if t < 1 {
		t = 1
	}
	switch h {
	case HorizLeftThird:
		return span{lo: a.lo, hi: a.lo + t}
	case HorizMidThird:
		return span{lo: a.lo + t, hi: a.lo + 2*t}
	default:
		return span{lo: a.lo + 2*t, hi: a.hi}
	}
}

// percentOf computes pct percent of dim with floor division. 0 percent
// yields 1 pixel and 100 percent exactly dim, so the extremes never
// produce a zero-sized or oversized window.
func percentOf(dim int16, pct int) int16 {
	switch {
	case pct <= 0:
		return 1
	case pct >= 100:
		return dim
	}
	v := geom.DivFloor(int(dim)*pct, 100)
	if v < 1 {
		v = 1
	}
	return int16(v)
}
