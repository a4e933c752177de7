// Command heightgen writes a procedural height map PNG that the terrain
// loader reads back with the same height encoding.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/sannhet/internal/engine/terrain"
	"github.com/Faultbox/sannhet/internal/logger"
)

func main() {
	out := flag.String("out", "res/heightmap.png", "Output PNG path")
	size := flag.Int("size", 257, "Image width and height in pixels")
	seed := flag.Int64("seed", 123, "Noise seed")
	octaves := flag.Int("octaves", 4, "Noise octaves")
	flag.Parse()

	if err := logger.Init("info", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := generate(*out, *size, *seed, *octaves); err != nil {
		logger.Error("height map generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func generate(out string, size int, seed int64, octaves int) error {
	if size < 2 {
		return fmt.Errorf("size must be at least 2, got %d", size)
	}

	img := terrain.GenerateHeightImage(size, seed, octaves)

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}

	logger.Info("height map written",
		zap.String("path", out),
		zap.Int("size", size),
		zap.Int64("seed", seed),
		zap.Int("octaves", octaves),
	)
	return nil
}
