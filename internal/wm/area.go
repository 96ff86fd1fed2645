package wm

import (
	"errors"
	"fmt"

	"github.com/wmplace/wmplace/internal/geom"
	"github.com/wmplace/wmplace/internal/logging"
)

// ErrNoDesktop means the target rectangle does not intersect any known
// desktop window.
var ErrNoDesktop = errors.New("no desktop contains the target window")

// Available computes the usable placement rectangle for a target box:
// the first desktop whose rectangle intersects the target, minus every
// dock rectangle overlapping it.
//
// Desktops and docks are visited in ascending id order. A dock that
// covers the whole remaining area, or none of it, is ignored. A partial
// overlap splits the area into up to four remainder candidates in the
// fixed order left-of-dock, right-of-dock, above-dock, below-dock, and
// the last candidate computed wins. Only one rectangular remainder
// survives each dock; the ordering rules are kept exactly for
// compatibility with existing key bindings.
func Available(g *Group, target geom.Box2D) (geom.Box2D, error) {
	var avail geom.Box2D
	found := false
	for _, id := range g.Desktops() {
		box := g.AbsBox(id)
		logging.Debug().Uint32("desktop", uint32(id)).Interface("box", box).Msg("checking desktop")
		if box.Intersects(target) {
			logging.Debug().Uint32("desktop", uint32(id)).Msg("target is on desktop")
			avail = box
			found = true
			break
		}
	}
	if !found {
		return geom.Box2D{}, fmt.Errorf("target %v: %w", target, ErrNoDesktop)
	}

	for _, id := range g.Docks() {
		box := g.AbsBox(id)
		overlap, ok := avail.Intersection(box)
		switch {
		case !ok:
			logging.Debug().Uint32("dock", uint32(id)).Msg("dock is outside avail area, ignoring it")
		case overlap == avail:
			// A dock erasing all usable space is treated as not
			// applicable rather than producing an empty result.
			logging.Debug().Uint32("dock", uint32(id)).Msg("dock covers avail area, ignoring it")
		default:
			logging.Debug().Uint32("dock", uint32(id)).Interface("overlap", overlap).Msg("dock overlaps avail, reducing")
			var regions []geom.Box2D
			if avail.Min.X < overlap.Min.X {
				// left of dock
				regions = append(regions, geom.Box2D{
					Min: avail.Min,
					Max: geom.Point{X: overlap.Min.X, Y: avail.Max.Y},
				})
			}
			if avail.Max.X > overlap.Max.X {
				// right of dock
				regions = append(regions, geom.Box2D{
					Min: geom.Point{X: overlap.Max.X, Y: avail.Min.Y},
					Max: avail.Max,
				})
			}
			if avail.Min.Y < overlap.Min.Y {
				// above dock
				regions = append(regions, geom.Box2D{
					Min: avail.Min,
					Max: geom.Point{X: avail.Max.X, Y: overlap.Min.Y},
				})
			}
			if avail.Max.Y > overlap.Max.Y {
				// below dock
				regions = append(regions, geom.Box2D{
					Min: geom.Point{X: avail.Min.X, Y: overlap.Max.Y},
					Max: avail.Max,
				})
			}
			// A partial overlap guarantees at least one candidate.
			avail = regions[len(regions)-1]
			logging.Debug().Interface("avail", avail).Msg("new avail region (taking last candidate)")
		}
	}

	return avail, nil
}
