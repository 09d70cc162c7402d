package app

import (
	"flag"
	"testing"
	"time"

	"life2d/internal/sims/life"
)

func TestConfigDefaultsMatchSimulation(t *testing.T) {
	if got := NewConfig().Life(); got != life.DefaultConfig() {
		t.Fatalf("Life()=%+v, expected %+v", got, life.DefaultConfig())
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-w", "64", "-h", "32", "-cell", "8", "-interval", "150ms", "-density", "33", "-seed", "7", "-grid"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	want := life.Config{Width: 64, Height: 32, CellSize: 8, Interval: 150 * time.Millisecond, Density: 33, Seed: 7, ShowGrid: true}
	if got := cfg.Life(); got != want {
		t.Fatalf("Life()=%+v, expected %+v", got, want)
	}
}
