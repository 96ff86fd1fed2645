package wm

import (
	"errors"
	"fmt"

	"github.com/wmplace/wmplace/internal/logging"
)

// ErrUnresolvedTarget means a starting window could not be mapped to any
// selectable window: neither it, an ancestor, nor an immediate child
// qualifies.
var ErrUnresolvedTarget = errors.New("no selectable window for target")

// Resolve maps a starting window id to the nearest selectable window.
// Window managers interpose decoration and container windows between the
// root and the real client, so the walk goes up the parent chain first
// and then one level down into the children.
func Resolve(g *Group, start WindowID) (WindowID, error) {
	w, ok := g.Window(start)
	if !ok {
		return 0, fmt.Errorf("window 0x%x not in snapshot: %w", uint32(start), ErrUnresolvedTarget)
	}
	if w.Selectable {
		return w.ID, nil
	}

	parent := w.Parent
	for parent > 0 && parent != g.RootID() {
		logging.Debug().
			Uint32("window", uint32(start)).
			Uint32("parent", uint32(parent)).
			Msg("window not selectable, checking parent")
		pw, ok := g.Window(parent)
		if !ok {
			break
		}
		if pw.Selectable {
			logging.Debug().Uint32("parent", uint32(parent)).Msg("parent window selectable, using it")
			return parent, nil
		}
		if pw.Parent == parent {
			break
		}
		parent = pw.Parent
	}

	for _, cid := range w.Children {
		if cw, ok := g.Window(cid); ok && cw.Selectable {
			logging.Debug().Uint32("child", uint32(cid)).Msg("child window selectable, using it")
			return cid, nil
		}
	}

	return 0, fmt.Errorf("window 0x%x: %w", uint32(start), ErrUnresolvedTarget)
}
