package painter

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultSeparators are the characters that advance the text cursor
// without drawing a glyph.
const DefaultSeparators = " \t"

// Glyph locates one character in a font atlas.
type Glyph struct {
	// Rect is the glyph's sub-rectangle of the atlas.
	Rect Rect
	// Advance is how far the cursor moves after the glyph, in pixels.
	Advance int
}

// Font is an immutable bitmap font: an atlas surface plus a per-character
// glyph table. Fonts are shared by pointer; the atlas pixels are referenced,
// never copied.
type Font struct {
	atlas      *Surface
	glyphs     map[rune]Glyph
	chars      []rune
	separators map[rune]bool
	size       int
}

// FontOption configures a Font during creation.
type FontOption func(*fontOptions)

type fontOptions struct {
	separators string
}

// WithSeparators replaces DefaultSeparators.
func WithSeparators(chars string) FontOption {
	return func(o *fontOptions) {
		o.separators = chars
	}
}

// NewImageFont builds a font from an image-font atlas.
//
// The atlas is a single strip of glyphs. The color of its top-left pixel is
// the separator color: every column whose top pixel has that color separates
// glyphs. The runs of other columns are assigned, left to right, to the
// characters of the given list. The character list is NFC-normalized so
// composed and decomposed spellings of the same text select the same glyphs.
//
// The font's size is the atlas height. Each glyph advances by its width.
func NewImageFont(atlas *Surface, characters string, opts ...FontOption) (*Font, error) {
	o := fontOptions{separators: DefaultSeparators}
	for _, opt := range opts {
		opt(&o)
	}

	if !utf8.ValidString(characters) {
		return nil, fmt.Errorf("painter: image font character list is not valid UTF-8: %w", ErrInvalidArgument)
	}
	characters = norm.NFC.String(characters)
	if characters == "" {
		return nil, fmt.Errorf("painter: image font needs at least one character: %w", ErrInvalidArgument)
	}
	if atlas.Width() == 0 || atlas.Height() == 0 {
		return nil, fmt.Errorf("painter: image font atlas is empty: %w", ErrDecode)
	}

	runs := scanGlyphRuns(atlas)
	chars := []rune(characters)
	if len(runs) < len(chars) {
		Logger().Warn("painter: image font atlas has too few glyphs",
			"glyphs", len(runs), "characters", len(chars))
		return nil, fmt.Errorf("painter: image font atlas has %d glyphs for %d characters: %w",
			len(runs), len(chars), ErrDecode)
	}

	f := &Font{
		atlas:      atlas,
		glyphs:     make(map[rune]Glyph, len(chars)),
		chars:      chars,
		separators: make(map[rune]bool),
		size:       atlas.Height(),
	}
	for i, r := range chars {
		if _, dup := f.glyphs[r]; dup {
			continue
		}
		f.glyphs[r] = Glyph{Rect: runs[i], Advance: runs[i].W}
	}
	for _, r := range o.separators {
		f.separators[r] = true
	}
	return f, nil
}

// LoadImageFont loads an image-font atlas from path and builds a font
// for the given characters.
func LoadImageFont(path, characters string, opts ...FontOption) (*Font, error) {
	atlas, err := LoadSurface(path)
	if err != nil {
		return nil, err
	}
	return NewImageFont(atlas, characters, opts...)
}

// scanGlyphRuns returns the column runs of the atlas top row that differ
// from the separator color at (0, 0).
func scanGlyphRuns(atlas *Surface) []Rect {
	sep := atlas.Pixel(0, 0)
	top := atlas.row(0, 0, atlas.Width())

	var runs []Rect
	start := -1
	for x, c := range top {
		switch {
		case Color(c) != sep && start < 0:
			start = x
		case Color(c) == sep && start >= 0:
			runs = append(runs, Rect{X: start, W: x - start, H: atlas.Height()})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, Rect{X: start, W: len(top) - start, H: atlas.Height()})
	}
	return runs
}

// Atlas returns the surface holding the glyph pixels.
func (f *Font) Atlas() *Surface { return f.atlas }

// Height returns the font's pixel size.
func (f *Font) Height() int { return f.size }

// Characters returns the characters the font was built for, in atlas order.
func (f *Font) Characters() string { return string(f.chars) }

// Glyph returns the glyph for r.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// IsSeparator reports whether r advances the cursor without being drawn.
func (f *Font) IsSeparator(r rune) bool {
	return f.separators[r]
}

// SpaceAdvance is the advance of separators that have no glyph of their own:
// the width of ' ' if the atlas has one, half the font size otherwise.
func (f *Font) SpaceAdvance() int {
	if g, ok := f.glyphs[' ']; ok {
		return g.Advance
	}
	return f.size / 2
}

// Advance returns how far r moves the cursor. Characters that are neither
// in the atlas nor separators have zero advance.
func (f *Font) Advance(r rune) int {
	if g, ok := f.glyphs[r]; ok {
		return g.Advance
	}
	if f.separators[r] {
		return f.SpaceAdvance()
	}
	return 0
}

// Width returns the sum of the advances of text's characters.
func (f *Font) Width(text string) int {
	w := 0
	for _, r := range text {
		w += f.Advance(r)
	}
	return w
}
