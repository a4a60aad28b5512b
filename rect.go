package painter

import "image"

// Rect is an integer rectangle: origin (X, Y) and extent (W, H).
// Used for clip regions, blit source and destination, and quads.
type Rect struct {
	X, Y, W, H int
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromImage converts an image.Rectangle.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// ImageRect converts r to an image.Rectangle.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the largest rectangle contained in both r and s.
// If they do not overlap the result has zero extent.
func (r Rect) Intersect(s Rect) Rect {
	x0, y0 := max(r.X, s.X), max(r.Y, s.Y)
	x1, y1 := min(r.X+r.W, s.X+s.W), min(r.Y+r.H, s.Y+s.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// sanitizeClip clamps a clip rectangle to a w×h target.
//
// The origin is clamped to zero first and the extent is then limited to what
// remains of the target past the clamped origin; a negative extent becomes 0,
// which suppresses all drawing until the clip is reset.
func sanitizeClip(r Rect, w, h int) Rect {
	r.X = max(0, r.X)
	r.Y = max(0, r.Y)
	r.W = max(0, min(r.W, w-r.X))
	r.H = max(0, min(r.H, h-r.Y))
	return r
}
