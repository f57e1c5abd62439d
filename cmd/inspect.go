package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/htz/claude-watch/internal/codec"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.png>",
	Short: "Show PNG header fields and chunk framing",
	Long: `Parses a PNG file's chunk structure without decoding pixel data and
prints the header fields plus a per-chunk table with CRC status.  Useful
for checking what a source or generated icon actually contains.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	hdr, chunks, err := codec.Info(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	fmt.Printf("  %s  (%d bytes)\n", hdr, len(data))
	fmt.Println()
	fmt.Println("  chunk   length  crc")
	for _, c := range chunks {
		crc := "ok"
		if !c.CRCOK {
			crc = "MISMATCH"
		}
		fmt.Printf("  %-6s %7d  %s\n", c.Type, c.Length, crc)
	}
	return nil
}
