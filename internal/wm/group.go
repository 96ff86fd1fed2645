// Package wm models the point-in-time window hierarchy snapshot and the
// placement queries that run against it: target resolution and
// available-area calculation. The package is wire-free so it can be
// tested against hand-built hierarchies.
package wm

import (
	"sort"

	"github.com/wmplace/wmplace/internal/geom"
)

// WindowID identifies a window in the snapshot. IDs are the server's
// opaque 32-bit resource ids.
type WindowID uint32

// Category is the closed set of window roles the pipeline cares about.
type Category int

const (
	CategoryNormal Category = iota
	CategoryDock
	CategoryDesktop
	CategoryRoot
)

func (c Category) String() string {
	switch c {
	case CategoryDock:
		return "dock"
	case CategoryDesktop:
		return "desktop"
	case CategoryRoot:
		return "root"
	default:
		return "normal"
	}
}

// Window is one record in the snapshot. Geom is relative to the
// window's parent; use Group.AbsBox for root coordinates. Selectable
// means the window is a mapped top-level client, the only reliable
// signal of "a real application window".
type Window struct {
	ID         WindowID
	Parent     WindowID
	Children   []WindowID
	Geom       geom.Box2D
	Category   Category
	Selectable bool
}

// Group is the snapshot of all windows plus the dock and desktop
// subsets. It is built once per run and read-only afterward.
type Group struct {
	windows  map[WindowID]Window
	root     WindowID
	desktops []WindowID
	docks    []WindowID
}

// NewGroup indexes the given windows and derives the dock/desktop sets,
// kept in ascending id order so iteration is deterministic.
func NewGroup(root WindowID, windows []Window) *Group {
	g := &Group{
		windows: make(map[WindowID]Window, len(windows)),
		root:    root,
	}
	for _, w := range windows {
		g.windows[w.ID] = w
		switch w.Category {
		case CategoryDock:
			g.docks = append(g.docks, w.ID)
		case CategoryDesktop:
			g.desktops = append(g.desktops, w.ID)
		}
	}
	sort.Slice(g.docks, func(i, j int) bool { return g.docks[i] < g.docks[j] })
	sort.Slice(g.desktops, func(i, j int) bool { return g.desktops[i] < g.desktops[j] })
	return g
}

// Window looks up a record by id.
func (g *Group) Window(id WindowID) (Window, bool) {
	w, ok := g.windows[id]
	return w, ok
}

func (g *Group) RootID() WindowID { return g.root }

// IDs returns every window id in the snapshot in ascending order.
func (g *Group) IDs() []WindowID {
	ids := make([]WindowID, 0, len(g.windows))
	for id := range g.windows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Desktops returns the desktop window ids in ascending order.
func (g *Group) Desktops() []WindowID { return g.desktops }

// Docks returns the dock window ids in ascending order.
func (g *Group) Docks() []WindowID { return g.docks }

// AbsBox returns a window's rectangle translated through all ancestors
// into root coordinates. Ancestors missing from the snapshot terminate
// the walk; whatever translation accumulated so far is kept.
func (g *Group) AbsBox(id WindowID) geom.Box2D {
	w, ok := g.windows[id]
	if !ok {
		return geom.Box2D{}
	}
	box := w.Geom
	for id != g.root {
		cur, ok := g.windows[id]
		if !ok || cur.Parent == id {
			break
		}
		id = cur.Parent
		if p, ok := g.windows[id]; ok {
			box = box.Translate(p.Geom.Min.X, p.Geom.Min.Y)
		}
	}
	return box
}
