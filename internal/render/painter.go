//go:build ebiten

package render

import (
	"life2d/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter is a Renderer that keeps the board in an ebiten image.
type Painter struct {
	canvas *Canvas
	img    *ebiten.Image
	dirty  bool
}

// NewPainter allocates a painter for a grid of size cells at cellSize pixels.
func NewPainter(size core.Size, cellSize int) *Painter {
	return &Painter{canvas: NewCanvas(size, cellSize), dirty: true}
}

// DrawCells implements life.Renderer.
func (p *Painter) DrawCells(g *core.Grid, cellSize int) {
	p.canvas.DrawCells(g, cellSize)
	p.dirty = true
}

// DrawGridLines implements life.Renderer.
func (p *Painter) DrawGridLines(size core.Size, cellSize int) {
	p.canvas.DrawGridLines(size, cellSize)
	p.dirty = true
}

// Blit uploads pending canvas changes and draws the board at the origin.
func (p *Painter) Blit(dst *ebiten.Image) {
	w, h := p.canvas.Bounds()
	if p.img == nil || p.img.Bounds().Dx() != w || p.img.Bounds().Dy() != h {
		p.img = ebiten.NewImage(w, h)
		p.dirty = true
	}
	if p.dirty {
		p.img.WritePixels(p.canvas.Pixels())
		p.dirty = false
	}
	dst.DrawImage(p.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the board image.
func (p *Painter) Size() (int, int) { return p.canvas.Bounds() }
