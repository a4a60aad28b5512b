package painter

import "fmt"

// Align is the horizontal alignment used by Printf.
type Align int

const (
	// AlignLeft starts the text at x.
	AlignLeft Align = iota
	// AlignCenter centers the text within [x, x+limit).
	AlignCenter
	// AlignRight ends the text at x+limit.
	AlignRight
)

// ParseAlign maps "left", "center" and "right" to an Align.
// Any other string is AlignLeft.
func ParseAlign(s string) Align {
	switch s {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// TextWidth returns the width of text in the current font: the sum of the
// characters' advances. It fails with ErrNoFontSet when no font is set.
func (c *Context) TextWidth(text string) (int, error) {
	f := c.cur.font
	if f == nil {
		return 0, fmt.Errorf("painter: text width: %w", ErrNoFontSet)
	}
	return f.Width(text), nil
}

// Print draws text with the current font, its top-left corner at (x, y).
//
// Each glyph is blitted from the font atlas at the cursor, which then moves
// right by the glyph's advance. Separators move the cursor without drawing.
// Text is clipped like any other blit; translation is not applied.
func (c *Context) Print(text string, x, y int) error {
	f := c.cur.font
	if f == nil {
		return fmt.Errorf("painter: print: %w", ErrNoFontSet)
	}

	cursor := x
	for _, r := range text {
		if g, ok := f.glyphs[r]; ok && !f.separators[r] {
			src := g.Rect
			c.Blit(f.atlas, &src, Rect{X: cursor, Y: y, W: src.W, H: src.H})
		}
		cursor += f.Advance(r)
	}
	return nil
}

// Printf draws text aligned within a span of limit pixels starting at x.
// The text is not wrapped; limit only affects where the text starts:
//
//	AlignLeft:   x
//	AlignCenter: x + limit/2 - width/2
//	AlignRight:  x + limit - width
func (c *Context) Printf(text string, x, y, limit int, align Align) error {
	w, err := c.TextWidth(text)
	if err != nil {
		return err
	}
	return c.Print(text, alignedX(x, limit, w, align), y)
}

func alignedX(x, limit, width int, align Align) int {
	switch align {
	case AlignRight:
		return x + limit - width
	case AlignCenter:
		return x + limit/2 - width/2
	default:
		return x
	}
}
