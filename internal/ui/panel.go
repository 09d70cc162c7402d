//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Panel renders the control buttons to the right of the board.
type Panel struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	pixel      *ebiten.Image
	buttons    []panelButton
}

type panelButton struct {
	cmd  Command
	rect image.Rectangle
}

// NewPanel constructs a panel of the given pixel width.
func NewPanel(width int) *Panel {
	if width < 0 {
		width = 0
	}
	p := &Panel{width: width}
	if width > 0 {
		p.pixel = ebiten.NewImage(1, 1)
		p.pixel.Fill(color.White)
	}
	for i, cmd := range PanelCommands {
		top := panelPadding + i*lineHeight
		rect := image.Rect(panelPadding, top, width-panelPadding, top+buttonHeight)
		p.buttons = append(p.buttons, panelButton{cmd: cmd, rect: rect})
	}
	return p
}

// Width returns the panel width in pixels.
func (p *Panel) Width() int { return p.width }

// MinHeight returns the height needed to show every button and status line.
func (p *Panel) MinHeight() int {
	return statusTop(len(p.buttons)) + len(Status{}.Lines())*statusSpacing + panelPadding
}

// Update returns the command for a button clicked this frame.
func (p *Panel) Update(offsetX int) Command {
	if p == nil || p.width <= 0 {
		return CommandNone
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return CommandNone
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return CommandNone
	}
	px := mx - offsetX
	for _, b := range p.buttons {
		if pointInRect(px, my, b.rect) {
			return b.cmd
		}
	}
	return CommandNone
}

// Draw paints the panel anchored at offsetX.
func (p *Panel) Draw(screen *ebiten.Image, offsetX, height int, st Status) {
	if p == nil || p.width <= 0 || height <= 0 {
		return
	}
	if p.panel == nil || p.lastHeight != height {
		p.panel = ebiten.NewImage(p.width, height)
		p.lastHeight = height
	}
	p.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for _, b := range p.buttons {
		p.drawButton(b.rect, Label(b.cmd, st))
	}
	face := basicfont.Face7x13
	y := statusTop(len(p.buttons))
	for _, line := range st.Lines() {
		text.Draw(p.panel, line, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += statusSpacing
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(p.panel, op)
}

func (p *Panel) drawButton(rect image.Rectangle, label string) {
	if p.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	p.panel.DrawImage(p.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(p.panel, label, face, x, y, fg)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

func statusTop(buttons int) int {
	return panelPadding + buttons*lineHeight + statusSpacing
}

const (
	panelPadding  = 10
	lineHeight    = 32
	buttonHeight  = 24
	statusSpacing = 18
)
