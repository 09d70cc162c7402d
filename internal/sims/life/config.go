package life

import (
	"fmt"
	"strconv"
	"time"

	"life2d/internal/core"
)

// Config holds parameters for the Life simulation.
type Config struct {
	Width  int
	Height int

	// Interval between ticker-driven steps.
	Interval time.Duration
	// Density is the percentage of cells seeded alive on construction.
	Density float64
	// Seed makes randomization reproducible. Zero uses an unseeded source.
	Seed int64

	CellSize int
	ShowGrid bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:    50,
		Height:   50,
		Interval: 400 * time.Millisecond,
		Density:  20,
		CellSize: 10,
	}
}

// FromMap populates a Config from a string map. Unparseable or out-of-range
// entries keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && core.ValidatePercent(parsed) == nil {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["grid"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ShowGrid = parsed
		}
	}
	return c
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", core.ErrInvalidArgument, c.Width, c.Height)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval %s must be positive", core.ErrInvalidArgument, c.Interval)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", core.ErrInvalidArgument, c.CellSize)
	}
	return core.ValidatePercent(c.Density)
}
