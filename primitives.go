package painter

import "fmt"

// Rectangle draw modes.
const (
	// ModeFill paints every pixel of the rectangle.
	ModeFill = "fill"
	// ModeLine paints the one pixel wide border of the rectangle.
	ModeLine = "line"
)

// Point sets the pixel at (x, y) to the foreground color.
//
// The coordinates are final: neither translation nor the clip rectangle is
// applied. A point outside the target is silently dropped.
func (c *Context) Point(x, y int) {
	c.target.SetPixel(x, y, c.cur.foreground)
}

// Line draws a one pixel wide line from (x1, y1) to (x2, y2), both endpoints
// included, with integer Bresenham stepping.
//
// Like Point, Line ignores translation and the clip rectangle; pixels that
// fall outside the target are skipped individually.
func (c *Context) Line(x1, y1, x2, y2 int) {
	fg := c.cur.foreground
	t := c.target

	dx, sx := abs(x2-x1), -1
	if x1 < x2 {
		sx = 1
	}
	dy, sy := abs(y2-y1), -1
	if y1 < y2 {
		sy = 1
	}

	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}

	for {
		t.SetPixel(x1, y1, fg)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x1 += sx
		}
		if e2 < dy {
			err += dx
			y1 += sy
		}
	}
}

// Rectangle draws a rectangle in the foreground color. The origin is offset
// by the current translation. mode is ModeFill or ModeLine; anything else,
// or a negative extent, is ErrInvalidArgument.
func (c *Context) Rectangle(mode string, x, y, w, h int) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("painter: rectangle extent %dx%d: %w", w, h, ErrInvalidArgument)
	}
	r := Rect{X: x + c.cur.tx, Y: y + c.cur.ty, W: w, H: h}
	switch mode {
	case ModeFill:
		c.FillRect(r)
	case ModeLine:
		c.StrokeRect(r)
	default:
		return fmt.Errorf("painter: rectangle mode %q, want %q or %q: %w", mode, ModeFill, ModeLine, ErrInvalidArgument)
	}
	return nil
}

// FillRect paints r, intersected with the clip rectangle, in the foreground
// color. r is in target coordinates; no translation is applied.
func (c *Context) FillRect(r Rect) {
	r = r.Intersect(c.cur.clip)
	if r.Empty() {
		return
	}
	fg := uint32(c.cur.foreground)
	for y := r.Y; y < r.Y+r.H; y++ {
		row := c.target.row(y, r.X, r.X+r.W)
		for i := range row {
			row[i] = fg
		}
	}
}

// StrokeRect paints the one pixel wide border of r, intersected with the
// clip rectangle. Interior pixels are left untouched.
func (c *Context) StrokeRect(r Rect) {
	if r.Empty() {
		return
	}
	c.FillRect(Rect{X: r.X, Y: r.Y, W: r.W, H: 1})
	if r.H > 1 {
		c.FillRect(Rect{X: r.X, Y: r.Y + r.H - 1, W: r.W, H: 1})
	}
	if r.H > 2 {
		c.FillRect(Rect{X: r.X, Y: r.Y + 1, W: 1, H: r.H - 2})
		if r.W > 1 {
			c.FillRect(Rect{X: r.X + r.W - 1, Y: r.Y + 1, W: 1, H: r.H - 2})
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
