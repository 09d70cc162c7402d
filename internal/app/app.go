//go:build ebiten

package app

import (
	"image/color"

	"life2d/internal/core"
	"life2d/internal/render"
	"life2d/internal/sims/life"
	"life2d/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panelWidth = 120

// Game adapts a Life simulation to the ebiten.Game interface.
type Game struct {
	sim     *life.Simulation
	ticker  *core.FrameTicker
	painter *render.Painter
	panel   *ui.Panel

	density float64
	dirty   bool
}

// New wires the simulation to a frame-driven ticker and an ebiten painter.
func New(sim *life.Simulation, density float64) *Game {
	ticker := core.NewFrameTicker()
	sim.SetTicker(ticker)
	painter := render.NewPainter(sim.Size(), sim.CellSize())
	sim.SetRenderer(painter)
	return &Game{
		sim:     sim,
		ticker:  ticker,
		painter: painter,
		panel:   ui.NewPanel(panelWidth),
		density: density,
		dirty:   true,
	}
}

// Update handles input and drives the ticker once per frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	cmd := ui.CommandNone
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		cmd = ui.CommandToggleRun
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		cmd = ui.CommandStep
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		cmd = ui.CommandRandomize
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		cmd = ui.CommandReset
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		cmd = ui.CommandToggleGrid
	}
	boardW, boardH := g.painter.Size()
	if c := g.panel.Update(boardW); c != ui.CommandNone {
		cmd = c
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x >= 0 && x < boardW && y >= 0 && y < boardH {
			g.sim.ToggleCell(render.PixelToCoordinate(x, y, g.sim.CellSize()))
			g.dirty = true
		}
	}
	if err := g.apply(cmd); err != nil {
		return err
	}

	g.ticker.Advance()
	if g.dirty {
		g.sim.Render()
		g.dirty = false
	}
	return nil
}

func (g *Game) apply(cmd ui.Command) error {
	switch cmd {
	case ui.CommandToggleRun:
		if g.sim.Running() {
			g.sim.Stop()
		} else {
			g.sim.Start()
		}
	case ui.CommandStep:
		g.sim.Step()
	case ui.CommandRandomize:
		if err := g.sim.Randomize(g.density); err != nil {
			return err
		}
		g.dirty = true
	case ui.CommandReset:
		g.sim.Reset()
		g.dirty = true
	case ui.CommandToggleGrid:
		g.sim.ToggleGrid()
		g.dirty = true
	}
	return nil
}

// Draw renders the board and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen)
	boardW, _ := g.painter.Size()
	_, h := g.Layout(0, 0)
	g.panel.Draw(screen, boardW, h, g.status())
}

func (g *Game) status() ui.Status {
	return ui.Status{
		Running:    g.sim.Running(),
		ShowGrid:   g.sim.ShowGrid(),
		Generation: g.sim.Generation(),
		Population: g.sim.Population(),
		Interval:   g.sim.Interval(),
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	if minH := g.panel.MinHeight(); h < minH {
		h = minH
	}
	return w + g.panel.Width(), h
}
