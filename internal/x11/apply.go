package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/wmplace/wmplace/internal/geom"
	"github.com/wmplace/wmplace/internal/logging"
	"github.com/wmplace/wmplace/internal/wm"
)

// SetGeometry moves and resizes a window's content box. Maximized state
// is cleared first, since window managers ignore geometry requests for
// maximized windows. The EWMH request goes through the window manager,
// which keeps decorations consistent; direct configuration is the
// fallback for unmanaged windows.
func (c *Connection) SetGeometry(id wm.WindowID, box geom.Box2D) error {
	win := xproto.Window(id)

	if err := c.unmaximize(win); err != nil {
		logging.Debug().Err(err).Uint32("window", uint32(id)).Msg("could not clear maximized state")
	}

	x, y := int(box.Min.X), int(box.Min.Y)
	w, h := int(box.Width()), int(box.Height())
	if err := ewmh.MoveresizeWindow(c.XUtil, win, x, y, w, h); err != nil {
		logging.Debug().Err(err).Msg("EWMH moveresize failed, configuring directly")
		xwindow.New(c.XUtil, win).MoveResize(x, y, w, h)
	}
	return nil
}

// unmaximize removes maximized state from a window.
func (c *Connection) unmaximize(win xproto.Window) error {
	states, err := ewmh.WmStateGet(c.XUtil, win)
	if err != nil {
		return err
	}

	for _, state := range states {
		if state == "_NET_WM_STATE_MAXIMIZED_HORZ" || state == "_NET_WM_STATE_MAXIMIZED_VERT" {
			if err := ewmh.WmStateReq(c.XUtil, win, 0, state); err != nil {
				return err
			}
		}
	}
	return nil
}
