// Package fontbake renders TrueType and OpenType fonts into image-font
// atlases that painter.NewImageFont can read.
//
// An atlas is one strip of glyph cells, each as wide as the glyph's advance,
// with a one-pixel separator column before every cell. Glyphs are drawn in
// the ink color on a transparent cell; the separator color is reserved.
//
//	atlas, chars, err := fontbake.Bake(goregular.TTF, "abc123 ", 16)
//	font, err := painter.NewImageFont(atlas, chars)
package fontbake

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/painter"
)

// Default colors of baked atlases.
const (
	DefaultSeparator = painter.Color(0xffff00ff)
	DefaultInk       = painter.Color(0xffffffff)
)

// Option configures Bake.
type Option func(*options)

type options struct {
	separator painter.Color
	ink       painter.Color
	dpi       float64
	hinting   font.Hinting
}

func defaultOptions() options {
	return options{
		separator: DefaultSeparator,
		ink:       DefaultInk,
		dpi:       72,
		hinting:   font.HintingFull,
	}
}

// WithSeparator sets the separator column color. It must be opaque and
// differ from the ink. Glyph cells hold transparent pixels, translucent
// anti-aliased ink and opaque ink, none of which can then match it.
func WithSeparator(c painter.Color) Option {
	return func(o *options) { o.separator = c }
}

// WithInk sets the glyph color.
func WithInk(c painter.Color) Option {
	return func(o *options) { o.ink = c }
}

// WithDPI sets the resolution size is measured at. The default is 72, so
// size is in pixels.
func WithDPI(dpi float64) Option {
	return func(o *options) { o.dpi = dpi }
}

// WithHinting sets the glyph hinting mode.
func WithHinting(h font.Hinting) Option {
	return func(o *options) { o.hinting = h }
}

// Bake rasterizes the characters of chars from the font file data at the
// given size and returns the atlas together with the characters it holds,
// in atlas order. Characters the font has no glyph for are left out, as are
// repeated characters.
func Bake(data []byte, chars string, size float64, opts ...Option) (*painter.Surface, string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if size <= 0 || o.dpi <= 0 {
		return nil, "", fmt.Errorf("fontbake: size %g at %g dpi: %w", size, o.dpi, painter.ErrInvalidArgument)
	}
	if o.separator == o.ink || o.separator.A() != 255 {
		return nil, "", fmt.Errorf("fontbake: separator color %v: %w", o.separator, painter.ErrInvalidArgument)
	}

	covered, err := coverage(data, norm.NFC.String(chars))
	if err != nil {
		return nil, "", err
	}
	if len(covered) == 0 {
		return nil, "", fmt.Errorf("fontbake: font covers none of %q: %w", chars, painter.ErrDecode)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, "", fmt.Errorf("fontbake: %w: %w", painter.ErrDecode, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     o.dpi,
		Hinting: o.hinting,
	})
	if err != nil {
		return nil, "", fmt.Errorf("fontbake: %w: %w", painter.ErrDecode, err)
	}
	defer face.Close()

	img := render(face, covered, o)
	atlas, err := painter.SurfaceFromImage(img)
	if err != nil {
		return nil, "", err
	}

	painter.Logger().Debug("fontbake: atlas baked",
		"glyphs", len(covered), "width", atlas.Width(), "height", atlas.Height())
	return atlas, string(covered), nil
}

// BakeFont bakes an atlas and builds a painter font from it.
func BakeFont(data []byte, chars string, size float64, opts ...Option) (*painter.Font, error) {
	atlas, covered, err := Bake(data, chars, size, opts...)
	if err != nil {
		return nil, err
	}
	return painter.NewImageFont(atlas, covered)
}

// coverage returns the distinct runes of chars the font maps to a glyph.
func coverage(data []byte, chars string) ([]rune, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		painter.Logger().Warn("fontbake: font parse failed", "err", err)
		return nil, fmt.Errorf("fontbake: %w: %w", painter.ErrDecode, err)
	}

	seen := make(map[rune]bool)
	var covered []rune
	for _, r := range chars {
		if seen[r] {
			continue
		}
		seen[r] = true
		if _, ok := face.NominalGlyph(r); !ok {
			painter.Logger().Debug("fontbake: no glyph", "rune", string(r))
			continue
		}
		covered = append(covered, r)
	}
	return covered, nil
}

// render draws the atlas strip: a separator column, then for each rune a
// transparent cell of the glyph's advance width and another separator.
func render(face font.Face, runes []rune, o options) *image.NRGBA {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := max(ascent+m.Descent.Ceil(), 1)

	widths := make([]int, len(runes))
	total := 1
	for i, r := range runes {
		adv, _ := face.GlyphAdvance(r)
		widths[i] = max(adv.Ceil(), 1)
		total += widths[i] + 1
	}

	img := image.NewNRGBA(image.Rect(0, 0, total, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(nrgba(o.separator)), image.Point{}, draw.Src)

	ink := image.NewUniform(nrgba(o.ink))
	x := 1
	for i, r := range runes {
		cell := image.Rect(x, 0, x+widths[i], height)
		draw.Draw(img, cell, image.Transparent, image.Point{}, draw.Src)

		d := font.Drawer{
			Dst:  img.SubImage(cell).(*image.NRGBA),
			Src:  ink,
			Face: face,
			Dot:  fixed.P(x, ascent),
		}
		d.DrawString(string(r))
		x += widths[i] + 1
	}
	return img
}

func nrgba(c painter.Color) color.NRGBA {
	r, g, b, a := c.Channels()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
