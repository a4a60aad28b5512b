package painter

// BlitExtent selects how Draw sizes its destination rectangle.
type BlitExtent int

const (
	// BlitTargetExtent sizes the destination from the target surface's own
	// width and height. This is the historical behavior and the default.
	BlitTargetExtent BlitExtent = iota

	// BlitSourceExtent sizes the destination from the source image or quad.
	BlitSourceExtent
)

// String returns the mode name.
func (e BlitExtent) String() string {
	switch e {
	case BlitTargetExtent:
		return "target"
	case BlitSourceExtent:
		return "source"
	default:
		return "unknown"
	}
}

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default state: opaque black, literal blit extent
//	c := painter.NewContext(fb)
//
//	// White pen, blits sized from their source
//	c := painter.NewContext(fb,
//	    painter.WithForeground(painter.White),
//	    painter.WithBlitExtent(painter.BlitSourceExtent))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	foreground Color
	background Color
	blitExtent BlitExtent
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		foreground: Black,
		background: Black,
		blitExtent: BlitTargetExtent,
	}
}

// WithBlitExtent selects how Draw sizes its destination rectangle.
func WithBlitExtent(e BlitExtent) ContextOption {
	return func(o *contextOptions) {
		o.blitExtent = e
	}
}

// WithForeground sets the foreground color the bottom state is reset to.
func WithForeground(c Color) ContextOption {
	return func(o *contextOptions) {
		o.foreground = c
	}
}

// WithBackground sets the background color the bottom state is reset to.
func WithBackground(c Color) ContextOption {
	return func(o *contextOptions) {
		o.background = c
	}
}
