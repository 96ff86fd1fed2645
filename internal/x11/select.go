package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"

	"github.com/wmplace/wmplace/internal/logging"
	"github.com/wmplace/wmplace/internal/wm"
)

// SelectWindow grabs the pointer with a crosshair cursor and blocks
// until a click lands on a window, returning the clicked child of the
// root. This is the one path in the program that can block
// indefinitely; it waits on the user.
func (c *Connection) SelectWindow() (wm.WindowID, error) {
	cursor, err := xcursor.CreateCursor(c.XUtil, xcursor.Crosshair)
	if err != nil {
		return 0, fmt.Errorf("failed to create selection cursor: %w", err)
	}

	conn := c.XUtil.Conn()
	grab, err := xproto.GrabPointer(conn, false, c.Root,
		uint16(xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease),
		xproto.GrabModeSync, xproto.GrabModeAsync,
		c.Root, cursor, xproto.TimeCurrentTime).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to grab pointer: %w", err)
	}
	if grab.Status != xproto.GrabStatusSuccess {
		return 0, fmt.Errorf("pointer grab refused (status %d)", grab.Status)
	}
	defer xproto.UngrabPointer(conn, xproto.TimeCurrentTime)

	for {
		xproto.AllowEvents(conn, xproto.AllowSyncPointer, xproto.TimeCurrentTime)

		ev, xerr := conn.WaitForEvent()
		if ev == nil && xerr == nil {
			return 0, fmt.Errorf("X connection closed while selecting a window")
		}
		if xerr != nil {
			logging.Debug().Str("error", xerr.Error()).Msg("ignoring X error during selection")
			continue
		}
		if press, ok := ev.(xproto.ButtonPressEvent); ok && press.Child != 0 {
			logging.Debug().Uint32("window", uint32(press.Child)).Msg("window selected by pointer")
			return wm.WindowID(press.Child), nil
		}
	}
}
