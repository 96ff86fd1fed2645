package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wmplace/wmplace/internal/logging"
)

var (
	debugMode bool
	noColor   bool

	errorColor = color.New(color.FgRed, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "wmplace",
	Short: "Move and resize X11 windows from symbolic placement specs",
	Long: `wmplace resolves a target window and computes a new position and size
for it from a symbolic placement spec ("left half", "top", "full"),
honoring panel/dock reservations and the window's decorative frame.

Each invocation is one shot: snapshot the window tree, compute the
placement, send one geometry request, exit. Bind it to window-manager
keys or run it by hand.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging of every pipeline stage")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(windowsCmd)

	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		logging.SetDebug(debugMode)
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
