package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/htz/claude-watch/internal/assets"
	"github.com/htz/claude-watch/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate icons whenever the source image changes",
	Long: `Runs an initial generate, then keeps watching the sparkle source image
and regenerates the icons on every change.  Handy while iterating on the
sparkle asset.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&genSource, "source", "s", "", "sparkle source image (required)")
	watchCmd.Flags().StringVarP(&genOut, "out", "o", "./assets", "output directory")
	watchCmd.Flags().StringVarP(&genProfile, "profile", "p", "menubar", "size profile (menubar, menubar-large, appiconset)")
	watchCmd.Flags().Float64Var(&genSoften, "soften", 0, "Gaussian sigma applied before encoding (0 = off)")
	watchCmd.Flags().IntVar(&genMaxSource, "max-source", 512, "downscale sources larger than this many pixels (0 = never)")
	watchCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := generateConfig()
	if err != nil {
		return err
	}

	rebuild := func() {
		start := time.Now()
		results, err := assets.Build(cfg)
		if err != nil {
			// Keep watching; a half-saved source often fails to decode.
			fmt.Fprintf(os.Stderr, "[icongen] error: %v\n", err)
			return
		}
		printGenerateReport(cfg, results, time.Since(start))
	}
	rebuild()

	w, err := watcher.New(cfg.SourcePath, rebuild)
	if err != nil {
		return err
	}

	fmt.Printf("  watching %s (ctrl-c to stop)\n", cfg.SourcePath)
	return w.Run(cmd.Context())
}
