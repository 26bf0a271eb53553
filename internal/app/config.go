package app

import (
	"flag"
	"time"

	"sparse-life/pkg/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern  string
	RLEFile  string
	Interval time.Duration
	CellSize int
	Width    int
	Height   int
	Seed     int64
	Paused   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern:  "glider",
		Interval: life.DefaultInterval,
		CellSize: 12,
		Width:    960,
		Height:   720,
		Seed:     42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "bundled pattern to seed the grid with")
	fs.StringVar(&c.RLEFile, "rle-file", c.RLEFile, "seed the grid from an RLE pattern file instead")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "initial cell size in pixels")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}
