package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/wmplace/wmplace/internal/geom"
	"github.com/wmplace/wmplace/internal/logging"
	"github.com/wmplace/wmplace/internal/wm"
)

// WM_STATE values per ICCCM; only NormalState windows are considered
// selectable.
const icccmStateNormal = 1

// windowCookies holds the in-flight requests for one window while the
// tree walk is still issuing queries, so all property fetches are
// pipelined before any reply is awaited.
type windowCookies struct {
	id       xproto.Window
	parent   xproto.Window
	children []xproto.Window
	geom     xproto.GetGeometryCookie
	state    xproto.GetPropertyCookie
	typ      xproto.GetPropertyCookie
}

// Snapshot walks the whole window tree once and builds the immutable
// group the rest of the run operates on. A window whose geometry or
// properties cannot be fetched is dropped with a warning; most windows
// are irrelevant to any given placement, so this is never fatal.
func (c *Connection) Snapshot() *wm.Group {
	var pending []windowCookies
	c.queryTree(&pending, c.Root, c.Root)

	windows := make([]wm.Window, 0, len(pending))
	for _, wc := range pending {
		geomReply, err := wc.geom.Reply()
		if err != nil {
			logging.Warn().Err(err).Uint32("window", uint32(wc.id)).Msg("GetGeometry failed, dropping window")
			continue
		}
		stateReply, err := wc.state.Reply()
		if err != nil {
			logging.Warn().Err(err).Uint32("window", uint32(wc.id)).Msg("GetProperty(WM_STATE) failed, dropping window")
			continue
		}
		typeReply, err := wc.typ.Reply()
		if err != nil {
			logging.Warn().Err(err).Uint32("window", uint32(wc.id)).Msg("GetProperty(_NET_WM_WINDOW_TYPE) failed, dropping window")
			continue
		}

		children := make([]wm.WindowID, len(wc.children))
		for i, child := range wc.children {
			children[i] = wm.WindowID(child)
		}

		windows = append(windows, wm.Window{
			ID:       wm.WindowID(wc.id),
			Parent:   wm.WindowID(wc.parent),
			Children: children,
			Geom: geom.FromOriginSize(
				geomReply.X, geomReply.Y,
				int16(geomReply.Width), int16(geomReply.Height),
			),
			Category:   c.category(wc.id, typeReply),
			Selectable: c.selectable(stateReply),
		})
	}

	return wm.NewGroup(wm.WindowID(c.Root), windows)
}

// queryTree issues the geometry and property requests for win, then
// recurses into its children. The QueryTree reply is the only one
// awaited during the walk; everything else resolves in Snapshot's
// second phase.
func (c *Connection) queryTree(pending *[]windowCookies, win, parent xproto.Window) {
	conn := c.XUtil.Conn()
	treeCookie := xproto.QueryTree(conn, win)

	wc := windowCookies{
		id:     win,
		parent: parent,
		geom:   xproto.GetGeometry(conn, xproto.Drawable(win)),
		state:  c.getProperty(win, c.atoms.wmState),
		typ:    c.getProperty(win, c.atoms.netWmWindowType),
	}

	tree, err := treeCookie.Reply()
	if err != nil {
		logging.Warn().Err(err).Uint32("window", uint32(win)).Msg("QueryTree failed")
	} else {
		wc.children = tree.Children
	}
	*pending = append(*pending, wc)

	for _, child := range wc.children {
		c.queryTree(pending, child, win)
	}
}

func (c *Connection) category(win xproto.Window, reply *xproto.GetPropertyReply) wm.Category {
	if win == c.Root {
		return wm.CategoryRoot
	}
	// Some clients (Spotify) set no _NET_WM_WINDOW_TYPE at all; treat
	// them as normal.
	if reply.Format != 32 || len(reply.Value) < 4 {
		return wm.CategoryNormal
	}
	switch xproto.Atom(xgb.Get32(reply.Value)) {
	case c.atoms.netWmWindowTypeDock:
		return wm.CategoryDock
	case c.atoms.netWmWindowTypeDesktop:
		return wm.CategoryDesktop
	default:
		return wm.CategoryNormal
	}
}

// selectable reports whether the WM_STATE reply marks a mapped top-level
// client. ICCCM mandates WM_STATE on client root windows, and only
// NormalState windows are placement targets.
func (c *Connection) selectable(reply *xproto.GetPropertyReply) bool {
	return reply.Type == c.atoms.wmState &&
		reply.Format == 32 &&
		len(reply.Value) >= 4 &&
		xgb.Get32(reply.Value) == icccmStateNormal
}
