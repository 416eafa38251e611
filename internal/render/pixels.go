package render

import (
	"image/color"

	"lifeboard/pkg/core"
)

// Palette holds the board colours.
type Palette struct {
	On   color.Color
	Off  color.Color
	Line color.Color
}

// DefaultPalette draws lime cells on white with black borders.
var DefaultPalette = Palette{
	On:   color.RGBA{R: 0x32, G: 0xcd, B: 0x32, A: 0xff},
	Off:  color.White,
	Line: color.Black,
}

// BoardPixels returns the pixel dimensions of g drawn at cell pixels per cell.
func BoardPixels(g core.Grid, cell int) (int, int) {
	return g.Cols() * cell, g.Rows() * cell
}

// FillBoardRGBA converts g into RGBA pixels in buf, cell pixels per cell with
// a one pixel border around every cell. buf must hold 4*w*h bytes for the
// size reported by BoardPixels.
func FillBoardRGBA(buf []byte, g core.Grid, cell int, p Palette) {
	w, h := BoardPixels(g, cell)
	if cell <= 0 || len(buf) < 4*w*h {
		return
	}
	on, off, line := rgba(p.On), rgba(p.Off), rgba(p.Line)
	for y := 0; y < h; y++ {
		row, inY := y/cell, y%cell
		for x := 0; x < w; x++ {
			col, inX := x/cell, x%cell
			px := off
			switch {
			case cell > 2 && (inX == 0 || inY == 0 || inX == cell-1 || inY == cell-1):
				px = line
			case g.Alive(row, col):
				px = on
			}
			copy(buf[4*(y*w+x):], px[:])
		}
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
