package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/wmplace/wmplace/internal/geom"
	"github.com/wmplace/wmplace/internal/logging"
	"github.com/wmplace/wmplace/internal/wm"
)

// ActiveWindow returns the id the window manager reports as active.
func (c *Connection) ActiveWindow() (wm.WindowID, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if win == 0 {
		return 0, fmt.Errorf("window manager reports no active window")
	}
	return wm.WindowID(win), nil
}

// FrameExtents returns the window decoration insets. A window with no
// reported extents gets zero insets, not an error.
func (c *Connection) FrameExtents(id wm.WindowID) geom.SideOffsets {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, xproto.Window(id))
	if err != nil {
		logging.Debug().Uint32("window", uint32(id)).Msg("window has no frame extents, assuming zero")
		return geom.SideOffsets{}
	}
	return geom.SideOffsets{
		Left:   int16(extents.Left),
		Top:    int16(extents.Top),
		Right:  int16(extents.Right),
		Bottom: int16(extents.Bottom),
	}
}
