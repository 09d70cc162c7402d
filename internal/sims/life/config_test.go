package life

import (
	"errors"
	"testing"
	"time"

	"life2d/internal/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":           "80",
		"h":           "60",
		"interval_ms": "250",
		"density":     "35.5",
		"seed":        "9",
		"cell":        "6",
		"grid":        "true",
	})
	want := Config{Width: 80, Height: 60, Interval: 250 * time.Millisecond, Density: 35.5, Seed: 9, CellSize: 6, ShowGrid: true}
	if c != want {
		t.Fatalf("FromMap=%+v, expected %+v", c, want)
	}
}

func TestFromMapKeepsDefaultsOnBadInput(t *testing.T) {
	c := FromMap(map[string]string{
		"w":           "-3",
		"h":           "abc",
		"interval_ms": "0",
		"density":     "120",
		"cell":        "0",
		"grid":        "maybe",
	})
	if c != DefaultConfig() {
		t.Fatalf("FromMap=%+v, expected defaults %+v", c, DefaultConfig())
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map must yield defaults")
	}
}

func TestValidate(t *testing.T) {
	mutate := []func(*Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Height = -1 },
		func(c *Config) { c.Interval = 0 },
		func(c *Config) { c.CellSize = 0 },
		func(c *Config) { c.Density = 101 },
		func(c *Config) { c.Density = -1 },
	}
	for i, m := range mutate {
		c := DefaultConfig()
		m(&c)
		if err := c.Validate(); !errors.Is(err, core.ErrInvalidArgument) {
			t.Fatalf("case %d: Validate err=%v, expected ErrInvalidArgument", i, err)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
