package painter

import "fmt"

// Quad selects the portion of an image to draw.
//
// X, Y, W, H is the viewport in source pixel space. SW and SH record the
// dimensions of the image the quad was made for; they are kept for callers
// that lay out sprite sheets and do not affect blitting.
type Quad struct {
	X, Y, W, H int
	SW, SH     int
}

// NewQuad creates a quad with viewport (x, y, w, h) on an sw×sh image.
func NewQuad(x, y, w, h, sw, sh int) (*Quad, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("painter: quad extent %dx%d: %w", w, h, ErrInvalidArgument)
	}
	return &Quad{X: x, Y: y, W: w, H: h, SW: sw, SH: sh}, nil
}

// Viewport returns the source rectangle selected by q.
func (q *Quad) Viewport() Rect {
	return Rect{X: q.X, Y: q.Y, W: q.W, H: q.H}
}

// SetViewport moves and resizes the source rectangle.
func (q *Quad) SetViewport(x, y, w, h int) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("painter: quad extent %dx%d: %w", w, h, ErrInvalidArgument)
	}
	q.X, q.Y, q.W, q.H = x, y, w, h
	return nil
}
