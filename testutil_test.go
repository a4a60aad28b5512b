package painter

import (
	"encoding/binary"
	"hash/crc32"
	"testing"
)

// separatorColor marks glyph boundaries in test atlases.
const separatorColor = Color(0xffff00ff)

// newTestSurface allocates a w×h surface or fails the test.
func newTestSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := NewSurface(w, h)
	if err != nil {
		t.Fatalf("NewSurface(%d, %d) error = %v", w, h, err)
	}
	return s
}

// newTestAtlas builds an image-font atlas of the given height with one glyph
// per width, separated by single magenta columns. Glyph i is filled with
// glyphColor(i).
func newTestAtlas(t *testing.T, height int, widths ...int) *Surface {
	t.Helper()
	total := 1
	for _, w := range widths {
		total += w + 1
	}
	atlas := newTestSurface(t, total, height)
	atlas.Fill(separatorColor)

	x := 1
	for i, w := range widths {
		for gy := 0; gy < height; gy++ {
			for gx := 0; gx < w; gx++ {
				atlas.SetPixel(x+gx, gy, glyphColor(i))
			}
		}
		x += w + 1
	}
	return atlas
}

func glyphColor(i int) Color {
	return NewColor(10*(i+1), 20, 30, 255)
}

// countColor counts pixels of s equal to c.
func countColor(s *Surface, c Color) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Pixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

// snapshot copies the surface pixels.
func snapshot(s *Surface) []uint32 {
	return append([]uint32(nil), s.Pix()...)
}

// pngHeader returns a PNG signature and IHDR chunk declaring a w×h RGBA
// image, with no pixel data after it.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 0, 17)
	ihdr = append(ihdr, "IHDR"...)
	ihdr = binary.BigEndian.AppendUint32(ihdr, w)
	ihdr = binary.BigEndian.AppendUint32(ihdr, h)
	ihdr = append(ihdr, 8, 6, 0, 0, 0) // 8-bit RGBA, no interlace

	b := []byte("\x89PNG\r\n\x1a\n")
	b = binary.BigEndian.AppendUint32(b, 13)
	b = append(b, ihdr...)
	return binary.BigEndian.AppendUint32(b, crc32.ChecksumIEEE(ihdr))
}
