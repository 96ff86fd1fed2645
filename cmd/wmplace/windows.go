package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wmplace/wmplace/internal/wm"
	"github.com/wmplace/wmplace/internal/x11"
)

var windowsAll bool

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List the window snapshot",
	Long: `List the windows wmplace sees, with category, selectability and
absolute geometry. Useful for debugging why a target resolves the way
it does. By default only selectable, dock and desktop windows are
shown; --all lists every window in the tree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWindows()
	},
}

func init() {
	windowsCmd.Flags().BoolVar(&windowsAll, "all", false, "Include unselectable normal windows")
}

func runWindows() error {
	conn, err := x11.NewConnection()
	if err != nil {
		return fmt.Errorf("failed to connect to X11 server: %w", err)
	}
	defer conn.Close()

	group := conn.Snapshot()

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Parent", "Category", "Selectable", "Geometry")

	for _, id := range group.IDs() {
		w, _ := group.Window(id)
		if !windowsAll && !w.Selectable && w.Category == wm.CategoryNormal {
			continue
		}
		selectable := ""
		if w.Selectable {
			selectable = "yes"
		}
		box := group.AbsBox(id)
		table.Append(
			fmt.Sprintf("0x%x", uint32(w.ID)),
			fmt.Sprintf("0x%x", uint32(w.Parent)),
			w.Category.String(),
			selectable,
			fmt.Sprintf("%dx%d+%d+%d", box.Width(), box.Height(), box.Min.X, box.Min.Y),
		)
	}

	table.Render()
	return nil
}
