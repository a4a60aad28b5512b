package painter

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/painter/internal/imageio"
)

// MaxSurfacePixels bounds the pixel count of a single surface (1 GiB of ARGB).
// Larger requests fail with ErrAllocation instead of exhausting memory.
const MaxSurfacePixels = imageio.MaxPixels

// ARGBModel converts any color to a packed straight-alpha Color.
var ARGBModel = color.ModelFunc(func(c color.Color) color.Color { return ColorOf(c) })

// Surface is a rectangular buffer of packed ARGB pixels.
//
// Rows are pitch bytes apart; pitch is at least width*4 and pixel (x, y)
// lives at index y*pitch/4 + x. A Surface either owns its buffer (loaded
// images) or refers to a buffer owned elsewhere (a display framebuffer).
//
// Surface implements draw.Image.
type Surface struct {
	width  int
	height int
	pitch  int
	pix    []uint32
}

// NewSurface allocates a zero-filled width×height surface with pitch width*4.
func NewSurface(width, height int) (*Surface, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("painter: surface size %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if imageio.TooLarge(width, height) {
		return nil, fmt.Errorf("painter: surface size %dx%d: %w", width, height, ErrAllocation)
	}
	return &Surface{
		width:  width,
		height: height,
		pitch:  width * 4,
		pix:    make([]uint32, width*height),
	}, nil
}

// NewSurfaceFromPixels wraps an externally owned pixel buffer without copying.
// pitch is in bytes and must be a multiple of 4 no smaller than width*4; pix
// must hold every addressed pixel.
func NewSurfaceFromPixels(pix []uint32, width, height, pitch int) (*Surface, error) {
	if width < 0 || height < 0 || pitch < width*4 || pitch%4 != 0 {
		return nil, fmt.Errorf("painter: surface %dx%d pitch %d: %w", width, height, pitch, ErrInvalidArgument)
	}
	if imageio.TooLarge(width, height) || imageio.TooLarge(pitch/4, height) {
		return nil, fmt.Errorf("painter: surface %dx%d pitch %d: %w", width, height, pitch, ErrAllocation)
	}
	if height > 0 && len(pix) < (height-1)*(pitch/4)+width {
		return nil, fmt.Errorf("painter: pixel buffer holds %d pixels, surface %dx%d pitch %d needs more: %w",
			len(pix), width, height, pitch, ErrInvalidArgument)
	}
	return &Surface{width: width, height: height, pitch: pitch, pix: pix}, nil
}

// WrapSurface returns a new surface sharing src's pixels. Writes through
// either surface are visible in both.
func WrapSurface(src *Surface) *Surface {
	s := *src
	return &s
}

// SurfaceFromImage copies img into a new surface.
func SurfaceFromImage(img image.Image) (*Surface, error) {
	b := img.Bounds()
	if imageio.TooLarge(b.Dx(), b.Dy()) {
		return nil, fmt.Errorf("painter: image size %dx%d: %w", b.Dx(), b.Dy(), ErrAllocation)
	}
	return fromBitmap(imageio.FromImage(img)), nil
}

// LoadSurface decodes the image file at path into a new surface.
// PNG, JPEG, GIF, BMP, TIFF and WebP files are supported.
func LoadSurface(path string) (*Surface, error) {
	bm, err := imageio.Load(path)
	if err != nil {
		Logger().Warn("painter: image decode failed", "path", path, "err", err)
		return nil, fmt.Errorf("painter: load %s: %w: %w", path, decodeKind(err), err)
	}
	return fromBitmap(bm), nil
}

// DecodeSurface decodes an encoded image read from r.
func DecodeSurface(r io.Reader) (*Surface, error) {
	bm, err := imageio.Decode(r)
	if err != nil {
		Logger().Warn("painter: image decode failed", "err", err)
		return nil, fmt.Errorf("painter: %w: %w", decodeKind(err), err)
	}
	return fromBitmap(bm), nil
}

// SurfaceFromBytes decodes an encoded image held in memory.
func SurfaceFromBytes(data []byte) (*Surface, error) {
	bm, err := imageio.DecodeBytes(data)
	if err != nil {
		Logger().Warn("painter: image decode failed", "bytes", len(data), "err", err)
		return nil, fmt.Errorf("painter: %w: %w", decodeKind(err), err)
	}
	return fromBitmap(bm), nil
}

// decodeKind maps an imageio error to ErrAllocation for oversized images
// and ErrDecode otherwise.
func decodeKind(err error) error {
	if errors.Is(err, imageio.ErrTooLarge) {
		return ErrAllocation
	}
	return ErrDecode
}

func fromBitmap(bm *imageio.Bitmap) *Surface {
	return &Surface{width: bm.Width, height: bm.Height, pitch: bm.Width * 4, pix: bm.Pix}
}

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.height }

// Pitch returns the row stride in bytes.
func (s *Surface) Pitch() int { return s.pitch }

// Pix returns the underlying pixel buffer.
func (s *Surface) Pix() []uint32 { return s.pix }

// stride returns the row stride in pixels.
func (s *Surface) stride() int { return s.pitch >> 2 }

// row returns the pixels of row y from column x0 to x1 (exclusive).
func (s *Surface) row(y, x0, x1 int) []uint32 {
	off := y * s.stride()
	return s.pix[off+x0 : off+x1]
}

// Rect returns the full surface rectangle.
func (s *Surface) Rect() Rect {
	return Rect{W: s.width, H: s.height}
}

// Pixel returns the color at (x, y), or Transparent outside the surface.
func (s *Surface) Pixel(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	return Color(s.pix[y*s.stride()+x])
}

// SetPixel sets the color at (x, y). Coordinates outside the surface are
// silently ignored.
func (s *Surface) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.stride()+x] = uint32(c)
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c Color) {
	for y := 0; y < s.height; y++ {
		row := s.row(y, 0, s.width)
		for i := range row {
			row[i] = uint32(c)
		}
	}
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return ARGBModel
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.Pixel(x, y)
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetPixel(x, y, ColorOf(c))
}

// ToImage copies the surface into a new *image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	return imageio.ToNRGBA(s.pix, s.width, s.height, s.stride())
}

// EncodePNG writes the surface to w as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return imageio.EncodePNG(w, s.pix, s.width, s.height, s.stride())
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	return imageio.SavePNG(path, s.pix, s.width, s.height, s.stride())
}
