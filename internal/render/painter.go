//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"lifeboard/pkg/core"
)

// GridPainter keeps a single RGBA image of the board in sync with the
// published grid.
type GridPainter struct {
	cell    int
	palette Palette
	img     *ebiten.Image
	buf     []byte
	last    core.Grid
	drawn   bool
}

// NewGridPainter allocates a painter for a rows x cols board.
func NewGridPainter(rows, cols, cell int, palette Palette) *GridPainter {
	w, h := cols*cell, rows*cell
	return &GridPainter{
		cell:    cell,
		palette: palette,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
	}
}

// Blit uploads g if it changed since the last call and draws the board at
// (x, y) on dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g core.Grid, x, y int) {
	if !gp.drawn || !gp.last.Equal(g) {
		FillBoardRGBA(gp.buf, g, gp.cell, gp.palette)
		gp.img.WritePixels(gp.buf)
		gp.last = g
		gp.drawn = true
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(gp.img, op)
}
