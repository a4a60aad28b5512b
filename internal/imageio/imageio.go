// Package imageio decodes encoded images into packed ARGB pixel rows.
//
// Decoded pixels use straight (non-premultiplied) alpha and are stored as
// 32-bit words (a<<24 | r<<16 | g<<8 | b) in row-major order with no row
// padding. PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the data is not a known image format.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")

	// ErrTooLarge is returned when the image header declares more than
	// MaxPixels pixels. Nothing is allocated for such images.
	ErrTooLarge = errors.New("imageio: image too large")
)

// MaxPixels bounds the pixel count of a decoded image (1 GiB of ARGB).
const MaxPixels = 1 << 28

// TooLarge reports whether a width×height image exceeds MaxPixels.
// It divides instead of multiplying so huge dimensions cannot overflow.
func TooLarge(width, height int) bool {
	return height > 0 && width > MaxPixels/height
}

// Bitmap is a decoded image: Width*Height packed ARGB words.
type Bitmap struct {
	Width  int
	Height int
	Pix    []uint32
}

// Load reads and decodes the image file at path.
func Load(path string) (*Bitmap, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: read file: %w", err)
	}
	return DecodeBytes(data)
}

// Decode reads r to the end and decodes the image it contains.
func Decode(r io.Reader) (*Bitmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: read: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes an encoded image held in memory.
// The content is sniffed first so that non-image data (text, archives)
// is reported as ErrUnsupportedFormat rather than as a decoder failure.
// The header is then checked against MaxPixels before any pixel memory is
// allocated.
func DecodeBytes(data []byte) (*Bitmap, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("%w: detected %q", ErrUnsupportedFormat, kind.Extension)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imageio: decode header: %w", err)
	}
	if cfg.Width < 0 || cfg.Height < 0 || TooLarge(cfg.Width, cfg.Height) {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}

	return FromImage(img), nil
}

// FromImage converts any image.Image into a Bitmap.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	bm := &Bitmap{Width: w, Height: h, Pix: make([]uint32, w*h)}

	// Fast path for *image.NRGBA: straight alpha, direct channel reorder
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			off := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			row := bm.Pix[y*w : (y+1)*w]
			for x := range row {
				p := nrgba.Pix[off : off+4 : off+4]
				row[x] = uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
				off += 4
			}
		}
		return bm
	}

	// Generic path: NRGBAModel un-premultiplies alpha
	for y := 0; y < h; y++ {
		row := bm.Pix[y*w : (y+1)*w]
		for x := range row {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			row[x] = uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		}
	}
	return bm
}

// ToNRGBA copies width*height packed ARGB pixels, laid out with the given
// row stride in pixels, into a new *image.NRGBA.
func ToNRGBA(pix []uint32, width, height, stride int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := pix[y*stride : y*stride+width]
		dst := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x, c := range src {
			d := dst[x*4 : x*4+4 : x*4+4]
			d[0] = uint8(c >> 16)
			d[1] = uint8(c >> 8)
			d[2] = uint8(c)
			d[3] = uint8(c >> 24)
		}
	}
	return img
}

// EncodePNG encodes packed ARGB pixels as PNG to w.
func EncodePNG(w io.Writer, pix []uint32, width, height, stride int) error {
	if err := png.Encode(w, ToNRGBA(pix, width, height, stride)); err != nil {
		return fmt.Errorf("imageio: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes packed ARGB pixels to a PNG file.
func SavePNG(path string, pix []uint32, width, height, stride int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := EncodePNG(f, pix, width, height, stride); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
