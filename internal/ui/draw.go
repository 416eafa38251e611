//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	background  = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	textColor   = color.RGBA{R: 20, G: 20, B: 24, A: 255}
	shade       = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	dialogFill  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	dialogTitle = color.RGBA{R: 40, G: 40, B: 48, A: 255}

	buttonColors = map[Action]color.RGBA{
		ActionToggleRun: {R: 0x00, G: 0x7b, B: 0xff, A: 255},
		ActionRandom:    {R: 0x28, G: 0xa7, B: 0x45, A: 255},
		ActionClear:     {R: 0xdc, G: 0x35, B: 0x45, A: 255},
		ActionInfo:      {R: 0x17, G: 0xa2, B: 0xb8, A: 255},
	}
)

// Painter draws the button bar and the info dialog.
type Painter struct {
	layout Layout
	pixel  *ebiten.Image
}

// NewPainter constructs a Painter for the given layout.
func NewPainter(l Layout) *Painter {
	p := &Painter{layout: l, pixel: ebiten.NewImage(1, 1)}
	p.pixel.Fill(color.White)
	return p
}

// DrawBackground clears the window.
func (p *Painter) DrawBackground(screen *ebiten.Image) {
	screen.Fill(background)
}

// DrawBar draws the buttons with the start/stop label matching running.
func (p *Painter) DrawBar(screen *ebiten.Image, running bool) {
	for _, b := range p.layout.Buttons {
		label := b.Label
		if b.Action == ActionToggleRun {
			label = RunLabel(running)
		}
		p.drawButton(screen, b.Rect, label, buttonColors[b.Action])
	}
}

// DrawDialog shades the window and draws the info dialog with lines of body
// text.
func (p *Painter) DrawDialog(screen *ebiten.Image, lines []string) {
	w, h := p.layout.Size()
	p.fill(screen, image.Rect(0, 0, w, h), shade)

	d := p.layout.Dialog
	p.fill(screen, d, dialogFill)

	face := basicfont.Face7x13
	x := d.Min.X + panelPadding
	y := d.Min.Y + panelPadding + LineHeight
	text.Draw(screen, InfoTitle, face, x, y, dialogTitle)
	y += LineHeight * 2
	for _, line := range lines {
		if y > p.layout.DialogClose.Min.Y-panelPadding {
			break
		}
		text.Draw(screen, line, face, x, y, textColor)
		y += LineHeight
	}
	p.drawButton(screen, p.layout.DialogClose, "Close", buttonColors[ActionInfo])
}

func (p *Painter) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, bg color.RGBA) {
	p.fill(screen, rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, color.White)
}

func (p *Painter) fill(screen *ebiten.Image, rect image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(p.pixel, op)
}
