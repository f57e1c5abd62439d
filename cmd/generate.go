package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/htz/claude-watch/internal/assets"
	"github.com/htz/claude-watch/internal/hasher"
)

var (
	genSource    string
	genOut       string
	genProfile   string
	genForce     bool
	genSoften    float64
	genMaxSource int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the template icons from a sparkle source image",
	Long: `Reads the sparkle source image, rasterizes the eye icon at every size
the profile asks for, and writes the template PNGs into the output
directory.

Outputs whose bytes are already on disk unchanged are skipped, so the
command is safe to run from build scripts on every invocation.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genSource, "source", "s", "", "sparkle source image (required)")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "./assets", "output directory")
	generateCmd.Flags().StringVarP(&genProfile, "profile", "p", "menubar", "size profile (menubar, menubar-large, appiconset)")
	generateCmd.Flags().BoolVar(&genForce, "force", false, "rewrite outputs even when unchanged")
	generateCmd.Flags().Float64Var(&genSoften, "soften", 0, "Gaussian sigma applied before encoding (0 = off)")
	generateCmd.Flags().IntVar(&genMaxSource, "max-source", 512, "downscale sources larger than this many pixels (0 = never)")
	generateCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := generateConfig()
	if err != nil {
		return err
	}
	start := time.Now()

	results, err := assets.Build(cfg)
	if err != nil {
		return err
	}

	printGenerateReport(cfg, results, time.Since(start))
	return nil
}

func generateConfig() (assets.Config, error) {
	absOut, err := filepath.Abs(genOut)
	if err != nil {
		return assets.Config{}, fmt.Errorf("resolve output path: %w", err)
	}
	prof := assets.Get(genProfile)

	logVerbose("source:  %s", genSource)
	logVerbose("output:  %s", absOut)
	logVerbose("profile: %s", prof.Name)

	return assets.Config{
		SourcePath: genSource,
		OutDir:     absOut,
		Profile:    prof,
		Force:      genForce,
		Soften:     genSoften,
		MaxSource:  genMaxSource,
	}, nil
}

func printGenerateReport(cfg assets.Config, results []assets.Result, elapsed time.Duration) {
	written := 0
	for _, r := range results {
		status := "written"
		if r.Skipped {
			status = "unchanged"
		} else {
			written++
		}
		fmt.Printf("  %-22s %3dpx  %5d B  %s\n", r.Name, r.Px, r.Bytes, status)
		logVerbose("%s hash=%s", r.Name, hasher.Hex(r.Hash))
	}
	fmt.Printf("  %d of %d files written to %s in %s\n",
		written, len(results), cfg.OutDir, elapsed.Round(time.Millisecond))
}
