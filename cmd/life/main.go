//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"sparse-life/internal/app"
	"sparse-life/pkg/life"
	"sparse-life/pkg/rle"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	seed, name, err := seedCells(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(cfg, seed)

	ebiten.SetWindowTitle("sparse-life — " + name)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// seedCells resolves the starting pattern: an on-disk RLE file when given,
// a bundled pattern otherwise. Files are only required to carry the RLE
// terminator; everything else about their content degrades softly.
func seedCells(cfg *app.Config) ([]life.Point, string, error) {
	if cfg.RLEFile != "" {
		data, err := os.ReadFile(cfg.RLEFile)
		if err != nil {
			return nil, "", err
		}
		text := string(data)
		if !strings.Contains(text, "!") {
			return nil, "", fmt.Errorf("%s: not an RLE pattern (missing '!')", cfg.RLEFile)
		}
		return rle.Decode(text), cfg.RLEFile, nil
	}

	cells, ok := rle.Pattern(cfg.Pattern)
	if !ok {
		return nil, "", fmt.Errorf("unknown pattern %q (bundled: %s)", cfg.Pattern, strings.Join(rle.Names(), ", "))
	}
	return cells, cfg.Pattern, nil
}
