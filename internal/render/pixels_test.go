package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 9, G: 8, B: 7, A: 6}}
	cells := []uint8{0, 1, 200}
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)

	want := []byte{1, 2, 3, 4, 9, 8, 7, 6, 9, 8, 7, 6}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d (buf=%v)", i, buf[i], want[i], buf)
		}
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{5, 5, 5, 5}
	fillPaletteRGBA(buf, []uint8{3}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, b)
		}
	}
}

func TestGrayPalette(t *testing.T) {
	p := GrayPalette()
	if len(p) != 256 || p[0].R != 0 || p[255].G != 255 || p[128].A != 255 {
		t.Fatalf("unexpected gray palette endpoints: %v %v", p[0], p[255])
	}
}
