// Package assets orchestrates icon generation: load the sparkle source,
// render every profile variant, encode, and write, skipping outputs whose
// bytes are already on disk unchanged.
package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/htz/claude-watch/internal/codec"
	"github.com/htz/claude-watch/internal/hasher"
	"github.com/htz/claude-watch/internal/icon"
)

// Config holds all parameters for one icon build.
type Config struct {
	SourcePath string
	OutDir     string
	Profile    Profile
	Force      bool    // rewrite outputs even when unchanged
	Soften     float64 // Gaussian sigma applied before encoding; 0 disables
	MaxSource  int     // downscale sources larger than this; 0 disables
}

// Result describes one output variant of a build.
type Result struct {
	Name    string
	Px      int
	Bytes   int
	Hash    uint64
	Skipped bool // identical bytes already on disk
}

// Build renders and writes every variant of the configured profile.
//
// All variants are rendered and encoded before the first byte hits disk, so
// a render or encode failure never leaves partial output behind.
func Build(cfg Config) ([]Result, error) {
	src, err := LoadSource(cfg.SourcePath, cfg.MaxSource)
	if err != nil {
		return nil, err
	}

	outputs := cfg.Profile.Outputs()
	encoded := make([][]byte, len(outputs))
	for i, out := range outputs {
		img := icon.Render(out.Px, src)
		if cfg.Soften > 0 {
			img = imaging.Clone(blur.Gaussian(img, cfg.Soften))
		}
		encoded[i] = codec.Encode(img)
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	results := make([]Result, len(outputs))
	for i, out := range outputs {
		sum := hasher.ContentHash(encoded[i])
		results[i] = Result{Name: out.Name, Px: out.Px, Bytes: len(encoded[i]), Hash: sum}

		path := filepath.Join(cfg.OutDir, out.Name)
		if !cfg.Force {
			if prev, err := hasher.FileHash(path); err == nil && prev == sum {
				results[i].Skipped = true
				continue
			}
		}
		if err := os.WriteFile(path, encoded[i], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", out.Name, err)
		}
	}
	return results, nil
}
