package imageio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func testNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 128})
	img.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	return img
}

func TestFromImage_NRGBA(t *testing.T) {
	bm := FromImage(testNRGBA())

	if bm.Width != 3 || bm.Height != 2 {
		t.Fatalf("Dimensions = (%d, %d), want (3, 2)", bm.Width, bm.Height)
	}
	tests := []struct {
		x, y int
		want uint32
	}{
		{0, 0, 0xffff0000},
		{1, 0, 0x8000ff00},
		{2, 1, 0x280a141e},
		{0, 1, 0},
	}
	for _, tt := range tests {
		if got := bm.Pix[tt.y*bm.Width+tt.x]; got != tt.want {
			t.Errorf("Pix(%d, %d) = %#08x, want %#08x", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFromImage_SubImageOffset(t *testing.T) {
	src := testNRGBA().SubImage(image.Rect(1, 0, 3, 2)).(*image.NRGBA)
	bm := FromImage(src)
	if bm.Width != 2 || bm.Height != 2 {
		t.Fatalf("Dimensions = (%d, %d), want (2, 2)", bm.Width, bm.Height)
	}
	if bm.Pix[0] != 0x8000ff00 {
		t.Errorf("Pix(0, 0) = %#08x, want 0x8000ff00", bm.Pix[0])
	}
}

func TestFromImage_Premultiplied(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	// premultiplied (100, 50, 0) at alpha 128 is straight (199, 99, 0)
	img.SetRGBA(0, 0, color.RGBA{R: 100, G: 50, A: 128})

	bm := FromImage(img)
	want := color.NRGBAModel.Convert(color.RGBA{R: 100, G: 50, A: 128}).(color.NRGBA)
	got := bm.Pix[0]
	if uint8(got>>24) != want.A || uint8(got>>16) != want.R || uint8(got>>8) != want.G || uint8(got) != want.B {
		t.Errorf("Pix = %#08x, want %+v", got, want)
	}
}

func TestDecodeBytes_PNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testNRGBA()); err != nil {
		t.Fatal(err)
	}

	bm, err := DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if bm.Pix[5] != 0x280a141e {
		t.Errorf("Pix[5] = %#08x, want 0x280a141e", bm.Pix[5])
	}
}

func TestDecode_BMP(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	img.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	bm, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if bm.Pix[3] != 0xff010203 {
		t.Errorf("Pix[3] = %#08x, want 0xff010203", bm.Pix[3])
	}
}

func TestDecodeBytes_Errors(t *testing.T) {
	if _, err := DecodeBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("DecodeBytes(nil) error = %v, want ErrEmptyData", err)
	}

	if _, err := DecodeBytes([]byte("definitely not an image")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("DecodeBytes(text) error = %v, want ErrUnsupportedFormat", err)
	}

	// Valid PNG signature followed by garbage: sniffed as an image, fails to decode.
	truncated := append([]byte("\x89PNG\r\n\x1a\n"), 0, 0, 0, 1, 'x')
	_, err := DecodeBytes(truncated)
	if err == nil {
		t.Fatal("DecodeBytes(truncated PNG) error = nil, want error")
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("DecodeBytes(truncated PNG) error = %v, want a decoder error", err)
	}
}

func TestDecodeBytes_TooLarge(t *testing.T) {
	tests := []struct {
		name string
		w, h uint32
	}{
		{"square", 100000, 100000},
		{"wide", 1<<28 + 1, 1},
		{"tall", 1, 1<<28 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes(pngHeader(tt.w, tt.h))
			if !errors.Is(err, ErrTooLarge) {
				t.Errorf("DecodeBytes(%dx%d header) error = %v, want ErrTooLarge", tt.w, tt.h, err)
			}
		})
	}
}

func TestDecodeBytes_HeaderWithinLimit(t *testing.T) {
	// passes the size check, then fails for lack of pixel data
	_, err := DecodeBytes(pngHeader(4, 4))
	if err == nil || errors.Is(err, ErrTooLarge) {
		t.Errorf("DecodeBytes(4x4 header) error = %v, want a decoder error", err)
	}
}

func TestTooLarge(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{0, 0, false},
		{MaxPixels, 1, false},
		{MaxPixels + 1, 1, true},
		{1 << 14, 1 << 14, false},
		{1 << 32, 1 << 32, true},
		{5, 0, false},
	}
	for _, tt := range tests {
		if got := TooLarge(tt.w, tt.h); got != tt.want {
			t.Errorf("TooLarge(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
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

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	if err := SavePNG(path, []uint32{0xff112233, 0x00000000}, 2, 1, 2); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	bm, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if bm.Width != 2 || bm.Height != 1 || bm.Pix[0] != 0xff112233 || bm.Pix[1] != 0 {
		t.Errorf("Load() = %+v, want 2x1 [0xff112233 0]", bm)
	}

	if _, err := Load(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestToNRGBA_Stride(t *testing.T) {
	// 2x2 image stored with a 3-pixel stride; the padding column is ignored.
	pix := []uint32{
		0xff010101, 0xff020202, 0xdeadbeef,
		0xff030303, 0xff040404, 0xdeadbeef,
	}
	img := ToNRGBA(pix, 2, 2, 3)
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{R: 4, G: 4, B: 4, A: 255}) {
		t.Errorf("NRGBAAt(1, 1) = %+v, want {4 4 4 255}", got)
	}
}
