package render

import (
	"image/color"
	"testing"

	"lifeboard/pkg/core"
)

func pixelAt(buf []byte, w, x, y int) [4]byte {
	i := 4 * (y*w + x)
	return [4]byte{buf[i], buf[i+1], buf[i+2], buf[i+3]}
}

func TestFillBoardRGBA(t *testing.T) {
	g, err := core.FromCells(2, 3, core.Cell{Row: 1, Col: 2})
	if err != nil {
		t.Fatal(err)
	}
	const cell = 4
	w, h := BoardPixels(g, cell)
	if w != 12 || h != 8 {
		t.Fatalf("board pixels = %dx%d, want 12x8", w, h)
	}
	buf := make([]byte, 4*w*h)
	FillBoardRGBA(buf, g, cell, DefaultPalette)

	lime := [4]byte{0x32, 0xcd, 0x32, 0xff}
	white := [4]byte{0xff, 0xff, 0xff, 0xff}
	black := [4]byte{0, 0, 0, 0xff}

	if got := pixelAt(buf, w, 2*cell+1, 1*cell+1); got != lime {
		t.Fatalf("live cell interior = %v, want %v", got, lime)
	}
	if got := pixelAt(buf, w, 1, 1); got != white {
		t.Fatalf("dead cell interior = %v, want %v", got, white)
	}
	if got := pixelAt(buf, w, 2*cell, 1*cell+1); got != black {
		t.Fatalf("cell border = %v, want %v", got, black)
	}
}

func TestFillBoardRGBAIgnoresShortBuffer(t *testing.T) {
	g, _ := core.Empty(2, 2)
	buf := make([]byte, 3)
	FillBoardRGBA(buf, g, 4, Palette{On: color.Black, Off: color.Black, Line: color.Black})
	for _, b := range buf {
		if b != 0 {
			t.Fatal("short buffer was written")
		}
	}
}
