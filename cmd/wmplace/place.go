package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wmplace/wmplace/internal/config"
	"github.com/wmplace/wmplace/internal/geom"
	"github.com/wmplace/wmplace/internal/logging"
	"github.com/wmplace/wmplace/internal/plan"
	"github.com/wmplace/wmplace/internal/wm"
	"github.com/wmplace/wmplace/internal/x11"
)

var (
	placeID     string
	placeActive bool
	placeSelect bool
	placeHoriz  string
	placeVert   string
	placeWidth  int
	placeHeight int
	placeHAlign string
	placeVAlign string
	placePreset string
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Resolve a target window and apply a placement",
	Long: `Resolve a target window and move/resize it.

The target is one of --id, --active or --select (click a window).
The placement is either symbolic (--horiz/--vert), numeric
(--width/--height percent with --halign/--valign), or a named
--preset from the config file.

The cycling specs --horiz left and --horiz right step through
50% -> 25% -> 75% of the available width on repeated invocations.`,
	Example: `  wmplace place --active --horiz left --vert full
  wmplace place --id 0x3400007 --width 50 --halign middle
  wmplace place --select --preset center`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlace(cmd)
	},
}

func init() {
	placeCmd.Flags().StringVar(&placeID, "id", "", "Target window id (decimal or 0x hex)")
	placeCmd.Flags().BoolVar(&placeActive, "active", false, "Target the active window")
	placeCmd.Flags().BoolVar(&placeSelect, "select", false, "Select the target window with the pointer")
	placeCmd.Flags().StringVar(&placeHoriz, "horiz", "current", "Horizontal spec (current, full, left, right, left25/50/75, right25/50/75, left-third, mid-third, right-third)")
	placeCmd.Flags().StringVar(&placeVert, "vert", "current", "Vertical spec (current, top, bottom, full)")
	placeCmd.Flags().IntVar(&placeWidth, "width", 0, "Width as percent of the available area (0-100)")
	placeCmd.Flags().IntVar(&placeHeight, "height", 0, "Height as percent of the available area (0-100)")
	placeCmd.Flags().StringVar(&placeHAlign, "halign", "", "Horizontal alignment for percent sizing (left, middle, right)")
	placeCmd.Flags().StringVar(&placeVAlign, "valign", "", "Vertical alignment for percent sizing (top, middle, bottom)")
	placeCmd.Flags().StringVar(&placePreset, "preset", "", "Named preset from the config file")
}

func runPlace(cmd *cobra.Command) error {
	targets := 0
	for _, set := range []bool{placeID != "", placeActive, placeSelect} {
		if set {
			targets++
		}
	}
	if targets != 1 {
		return fmt.Errorf("exactly one of --id, --active or --select is required")
	}

	req, err := placeRequest(cmd)
	if err != nil {
		return err
	}

	conn, err := x11.NewConnection()
	if err != nil {
		return fmt.Errorf("failed to connect to X11 server: %w", err)
	}
	defer conn.Close()

	var start wm.WindowID
	switch {
	case placeID != "":
		id, err := strconv.ParseUint(placeID, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid window id %q: %w", placeID, err)
		}
		start = wm.WindowID(id)
	case placeActive:
		if start, err = conn.ActiveWindow(); err != nil {
			return err
		}
	case placeSelect:
		if start, err = conn.SelectWindow(); err != nil {
			return fmt.Errorf("failed to select window: %w", err)
		}
	}

	group := conn.Snapshot()

	target, err := wm.Resolve(group, start)
	if err != nil {
		return err
	}
	logging.Debug().Uint32("target", uint32(target)).Msg("target window resolved")

	extents := conn.FrameExtents(target)
	logging.Debug().Interface("extents", extents).Msg("target frame extents")

	current := geom.Unframe(group.AbsBox(target), extents)
	logging.Debug().Interface("box", current).Msg("target unframed geometry")

	avail, err := wm.Available(group, current)
	if err != nil {
		return err
	}
	logging.Debug().Interface("box", avail).Msg("available area")

	planned := plan.Plan(current, avail, req)
	logging.Debug().Interface("box", planned).Msg("planned geometry")

	framed := geom.Reframe(planned, extents)
	logging.Debug().Interface("box", framed).Msg("reframed content geometry")

	if err := conn.SetGeometry(target, framed); err != nil {
		return fmt.Errorf("failed to move/resize window: %w", err)
	}
	return nil
}

// placeRequest builds the planner request from the flags, or from the
// named preset when --preset is given.
func placeRequest(cmd *cobra.Command) (plan.Request, error) {
	if placePreset != "" {
		cfg, err := config.Load()
		if err != nil {
			return plan.Request{}, err
		}
		return cfg.Request(placePreset)
	}

	var req plan.Request
	var err error
	if req.Horiz, err = plan.ParseHoriz(placeHoriz); err != nil {
		return plan.Request{}, err
	}
	if req.Vert, err = plan.ParseVert(placeVert); err != nil {
		return plan.Request{}, err
	}
	if req.HAlign, err = plan.ParseHAlign(placeHAlign); err != nil {
		return plan.Request{}, err
	}
	if req.VAlign, err = plan.ParseVAlign(placeVAlign); err != nil {
		return plan.Request{}, err
	}
	if cmd.Flags().Changed("width") {
		if placeWidth < 0 || placeWidth > 100 {
			return plan.Request{}, fmt.Errorf("--width %d out of range 0-100", placeWidth)
		}
		req.Width = &placeWidth
	}
	if cmd.Flags().Changed("height") {
		if placeHeight < 0 || placeHeight > 100 {
			return plan.Request{}, fmt.Errorf("--height %d out of range 0-100", placeHeight)
		}
		req.Height = &placeHeight
	}
	return req, nil
}
