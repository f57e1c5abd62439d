package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "icongen",
	Short: "Menu bar template icon generator for claude-watch",
	Long: `icongen renders the claude-watch menu bar icon — a rounded eye with
the sparkle mark as its pupil — as macOS template PNGs.

Template images are black-on-transparent; macOS applies the theme tint
itself, so no color is ever baked into the output.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"icongen %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[icongen] "+format+"\n", args...)
	}
}
