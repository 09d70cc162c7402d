package render

import (
	"image"
	"image/color"

	"life2d/internal/core"
)

var (
	// DefaultOn is the fill used for live cells.
	DefaultOn = color.RGBA{R: 200, A: 255}
	// DefaultOff is the board background.
	DefaultOff = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// DefaultLine strokes the grid overlay.
	DefaultLine = color.RGBA{A: 255}
)

// Canvas is an RGBA drawing sink for a Life board. It sizes itself to the
// grid and cell size it is asked to draw.
type Canvas struct {
	img *image.RGBA

	On, Off, Line color.RGBA
}

// NewCanvas allocates a canvas for a grid of size cells at cellSize pixels.
func NewCanvas(size core.Size, cellSize int) *Canvas {
	c := &Canvas{On: DefaultOn, Off: DefaultOff, Line: DefaultLine}
	c.ensure(size, cellSize)
	return c
}

// Image exposes the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Pixels exposes the backing RGBA bytes.
func (c *Canvas) Pixels() []byte { return c.img.Pix }

// Bounds returns the canvas size in pixels.
func (c *Canvas) Bounds() (int, int) { return c.img.Rect.Dx(), c.img.Rect.Dy() }

// DrawCells clears the canvas and fills one square per live cell.
func (c *Canvas) DrawCells(g *core.Grid, cellSize int) {
	size := g.Size()
	c.ensure(size, cellSize)
	c.fillRect(c.img.Rect, c.Off)
	cells := g.Cells()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			if cells[row*size.W+col] != core.Alive {
				continue
			}
			x, y := col*cellSize, row*cellSize
			c.fillRect(image.Rect(x, y, x+cellSize, y+cellSize), c.On)
		}
	}
}

// DrawGridLines strokes the top edge of every row and the left edge of every
// column.
func (c *Canvas) DrawGridLines(size core.Size, cellSize int) {
	c.ensure(size, cellSize)
	w, h := size.W*cellSize, size.H*cellSize
	for row := 0; row < size.H; row++ {
		y := row * cellSize
		c.fillRect(image.Rect(0, y, w, y+1), c.Line)
	}
	for col := 0; col < size.W; col++ {
		x := col * cellSize
		c.fillRect(image.Rect(x, 0, x+1, h), c.Line)
	}
}

func (c *Canvas) ensure(size core.Size, cellSize int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	rect := image.Rect(0, 0, size.W*cellSize, size.H*cellSize)
	if c.img == nil || c.img.Rect != rect {
		c.img = image.NewRGBA(rect)
	}
}

func (c *Canvas) fillRect(r image.Rectangle, col color.RGBA) {
	r = r.Intersect(c.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		base := c.img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			c.img.Pix[base+0] = col.R
			c.img.Pix[base+1] = col.G
			c.img.Pix[base+2] = col.B
			c.img.Pix[base+3] = col.A
			base += 4
		}
	}
}

// PixelToCoordinate maps a board-relative pixel to the cell beneath it.
// Negative pixels map to negative coordinates.
func PixelToCoordinate(x, y, cellSize int) core.Coordinate {
	if cellSize <= 0 {
		cellSize = 1
	}
	return core.Coordinate{Row: floorDiv(y, cellSize), Col: floorDiv(x, cellSize)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
