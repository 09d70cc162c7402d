package app

import (
	"flag"
	"time"

	"life2d/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Cell     int
	Interval time.Duration
	Density  float64
	Seed     int64
	Grid     bool
}

// NewConfig returns a Config populated from the simulation defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Width:    d.Width,
		Height:   d.Height,
		Cell:     d.CellSize,
		Interval: d.Interval,
		Density:  d.Density,
		Seed:     d.Seed,
		Grid:     d.ShowGrid,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations while running")
	fs.Float64Var(&c.Density, "density", c.Density, "percentage of cells alive after randomizing")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomization (0 = unseeded)")
	fs.BoolVar(&c.Grid, "grid", c.Grid, "draw grid lines")
}

// Life converts the flags into a simulation config.
func (c *Config) Life() life.Config {
	return life.Config{
		Width:    c.Width,
		Height:   c.Height,
		Interval: c.Interval,
		Density:  c.Density,
		Seed:     c.Seed,
		CellSize: c.Cell,
		ShowGrid: c.Grid,
	}
}
