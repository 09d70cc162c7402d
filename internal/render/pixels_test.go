package render

import (
	"image/color"
	"testing"

	"life2d/internal/core"
)

func TestCanvasDrawCells(t *testing.T) {
	g, err := core.NewGrid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(core.Coordinate{Row: 1, Col: 2}, core.Alive)

	c := NewCanvas(g.Size(), 4)
	c.DrawCells(g, 4)
	if w, h := c.Bounds(); w != 12 || h != 8 {
		t.Fatalf("canvas bounds %dx%d, expected 12x8", w, h)
	}

	img := c.Image()
	cases := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, DefaultOff},
		{8, 4, DefaultOn},
		{11, 7, DefaultOn},
		{7, 4, DefaultOff},
		{8, 3, DefaultOff},
	}
	for _, tc := range cases {
		if got := img.RGBAAt(tc.x, tc.y); got != tc.want {
			t.Fatalf("pixel (%d,%d)=%v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}

	g.Reset()
	c.DrawCells(g, 4)
	if got := img.RGBAAt(8, 4); got != DefaultOff {
		t.Fatalf("DrawCells did not clear previous frame: %v", got)
	}
}

func TestCanvasDrawGridLines(t *testing.T) {
	size := core.Size{W: 2, H: 2}
	c := NewCanvas(size, 5)
	g, err := core.NewGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	c.DrawCells(g, 5)
	c.DrawGridLines(size, 5)

	img := c.Image()
	for _, p := range [][2]int{{0, 0}, {9, 0}, {0, 5}, {9, 5}, {5, 9}, {0, 9}} {
		if got := img.RGBAAt(p[0], p[1]); got != DefaultLine {
			t.Fatalf("pixel %v=%v, expected grid line", p, got)
		}
	}
	if got := img.RGBAAt(2, 2); got != DefaultOff {
		t.Fatalf("cell interior %v, expected background", got)
	}
}

func TestCanvasResizesForCellSize(t *testing.T) {
	c := NewCanvas(core.Size{W: 2, H: 2}, 1)
	g, err := core.NewGrid(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	c.DrawCells(g, 2)
	if w, h := c.Bounds(); w != 6 || h != 2 {
		t.Fatalf("canvas bounds %dx%d, expected 6x2", w, h)
	}
}

func TestPixelToCoordinate(t *testing.T) {
	cases := []struct {
		x, y, cell int
		want       core.Coordinate
	}{
		{0, 0, 10, core.Coordinate{Row: 0, Col: 0}},
		{9, 9, 10, core.Coordinate{Row: 0, Col: 0}},
		{25, 10, 10, core.Coordinate{Row: 1, Col: 2}},
		{-1, 5, 10, core.Coordinate{Row: 0, Col: -1}},
		{5, -11, 10, core.Coordinate{Row: -2, Col: 0}},
		{3, 4, 0, core.Coordinate{Row: 4, Col: 3}},
	}
	for _, tc := range cases {
		if got := PixelToCoordinate(tc.x, tc.y, tc.cell); got != tc.want {
			t.Fatalf("PixelToCoordinate(%d,%d,%d)=%+v, expected %+v", tc.x, tc.y, tc.cell, got, tc.want)
		}
	}
}
