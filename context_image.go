package painter

import "github.com/gogpu/painter/internal/blend"

// DrawParams positions an image drawn with Context.Draw.
//
// The destination origin is (X + OX, Y + OY) plus the current translation,
// each term truncated toward zero. R (rotation), SX and SY (scale) and KX and
// KY (shear) are accepted for API compatibility and currently ignored.
type DrawParams struct {
	X, Y   float64
	R      float64
	SX, SY float64
	OX, OY float64
	KX, KY float64
}

// At is shorthand for DrawParams{X: x, Y: y}.
func At(x, y float64) DrawParams {
	return DrawParams{X: x, Y: y, SX: 1, SY: 1}
}

// Draw composites src, or the part of it selected by quad, onto the target.
//
// The destination rectangle starts at the translated origin described by p.
// Its extent depends on the context's BlitExtent: BlitTargetExtent (default)
// uses the target's own width and height, BlitSourceExtent uses the size of
// the quad or of src. Pixels are alpha blended and clipped to the clip
// rectangle.
func (c *Context) Draw(src *Surface, quad *Quad, p DrawParams) {
	dst := Rect{
		X: int(p.X) + int(p.OX) + c.cur.tx,
		Y: int(p.Y) + int(p.OY) + c.cur.ty,
	}

	var srect *Rect
	if quad != nil {
		vp := quad.Viewport()
		srect = &vp
	}

	switch c.opts.blitExtent {
	case BlitSourceExtent:
		if srect != nil {
			dst.W, dst.H = srect.W, srect.H
		} else {
			dst.W, dst.H = src.Width(), src.Height()
		}
	default:
		dst.W, dst.H = c.target.Width(), c.target.Height()
	}

	c.Blit(src, srect, dst)
}

// Blit composites the srect region of src (all of src if srect is nil) onto
// the target at dst. No translation is applied. The copied extent is the
// smaller of the source region and dst; it is clipped to the source bounds,
// the clip rectangle and the target.
//
// Blending is straight-alpha source-over: a source alpha of 0 leaves the
// destination untouched and 255 overwrites it.
func (c *Context) Blit(src *Surface, srect *Rect, dst Rect) {
	s := src.Rect()
	if srect != nil {
		s = *srect
	}

	// Clip source region to source bounds, moving the destination with it
	if s.X < 0 {
		s.W += s.X
		dst.X -= s.X
		s.X = 0
	}
	if s.Y < 0 {
		s.H += s.Y
		dst.Y -= s.Y
		s.Y = 0
	}
	s.W = min(s.W, src.Width()-s.X)
	s.H = min(s.H, src.Height()-s.Y)

	d := Rect{X: dst.X, Y: dst.Y, W: min(s.W, dst.W), H: min(s.H, dst.H)}
	if d.Empty() {
		return
	}

	// Clip destination; the clip is always inside the target
	clipped := d.Intersect(c.cur.clip)
	if clipped.Empty() {
		return
	}
	sx := s.X + clipped.X - d.X
	sy := s.Y + clipped.Y - d.Y

	for row := 0; row < clipped.H; row++ {
		blend.OverSpan(
			c.target.row(clipped.Y+row, clipped.X, clipped.X+clipped.W),
			src.row(sy+row, sx, sx+clipped.W),
		)
	}
}
