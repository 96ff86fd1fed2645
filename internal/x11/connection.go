// Package x11 is the wire side of wmplace: it builds the window
// snapshot from the live server, resolves the active or pointer-selected
// window, and issues the final move/resize command.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Connection manages the X11 connection and the atoms interned for the
// run.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
	atoms atoms
}

type atoms struct {
	wmState                xproto.Atom
	netWmWindowType        xproto.Atom
	netWmWindowTypeDock    xproto.Atom
	netWmWindowTypeDesktop xproto.Atom
}

// NewConnection establishes a connection to the X11 server and interns
// the atoms the snapshot builder needs.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	c := &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}
	if err := c.internAtoms(); err != nil {
		xu.Conn().Close()
		return nil, err
	}
	return c, nil
}

// Close cleanly disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

func (c *Connection) internAtoms() error {
	conn := c.XUtil.Conn()
	names := []struct {
		name string
		dst  *xproto.Atom
	}{
		{"WM_STATE", &c.atoms.wmState},
		{"_NET_WM_WINDOW_TYPE", &c.atoms.netWmWindowType},
		{"_NET_WM_WINDOW_TYPE_DOCK", &c.atoms.netWmWindowTypeDock},
		{"_NET_WM_WINDOW_TYPE_DESKTOP", &c.atoms.netWmWindowTypeDesktop},
	}

	cookies := make([]xproto.InternAtomCookie, len(names))
	for i, n := range names {
		cookies[i] = xproto.InternAtom(conn, false, uint16(len(n.name)), n.name)
	}
	for i, n := range names {
		reply, err := cookies[i].Reply()
		if err != nil {
			return fmt.Errorf("failed to intern %s: %w", n.name, err)
		}
		*n.dst = reply.Atom
	}
	return nil
}

func (c *Connection) getProperty(win xproto.Window, prop xproto.Atom) xproto.GetPropertyCookie {
	return xproto.GetProperty(c.XUtil.Conn(), false, win, prop,
		xproto.GetPropertyTypeAny, 0, 512)
}
