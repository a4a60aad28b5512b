package painter

// state is one entry of the painter state stack.
type state struct {
	foreground Color
	background Color
	clip       Rect
	tx, ty     int
	font       *Font
}

// Context is the painter: a target surface plus a stack of drawing states
// (foreground and background color, clip rectangle, translation, font).
//
// The target is borrowed. The Context never frees or replaces its pixel
// buffer, and every state on the stack draws into the same target.
//
// A Context is not safe for concurrent use.
type Context struct {
	target *Surface
	cur    state
	stack  []state
	opts   contextOptions
}

// NewContext creates a painter drawing into target.
// Optional ContextOption arguments change the reset state and blit mode:
//
//	c := painter.NewContext(fb)
//	c := painter.NewContext(fb, painter.WithForeground(painter.White))
func NewContext(target *Surface, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	c := &Context{
		stack: make([]state, 0, 8),
		opts:  options,
	}
	c.Reset(target)
	return c
}

// Reset discards every saved state and reinitializes the bottom state for
// target: default colors, clip covering the whole target, no translation
// and no font.
func (c *Context) Reset(target *Surface) {
	c.target = target
	c.stack = c.stack[:0]
	c.cur = state{
		foreground: c.opts.foreground,
		background: c.opts.background,
		clip:       target.Rect(),
	}
}

// Target returns the surface being drawn into.
func (c *Context) Target() *Surface { return c.target }

// Width returns the target width in pixels.
func (c *Context) Width() int { return c.target.Width() }

// Height returns the target height in pixels.
func (c *Context) Height() int { return c.target.Height() }

// BlitExtent returns how Draw sizes its destination rectangle.
func (c *Context) BlitExtent() BlitExtent { return c.opts.blitExtent }

// Push saves a copy of the current state. Drawing state changes made after
// Push are undone by the matching Pop. It returns the new stack depth.
func (c *Context) Push() int {
	c.stack = append(c.stack, c.cur)
	return len(c.stack)
}

// Pop restores the state saved by the most recent Push and returns the new
// stack depth. At the bottom of the stack Pop does nothing, so unbalanced
// push/pop blocks never underflow.
func (c *Context) Pop() int {
	if len(c.stack) == 0 {
		Logger().Debug("painter: pop at bottom of state stack")
		return 0
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return len(c.stack)
}

// Depth returns the number of saved states.
func (c *Context) Depth() int { return len(c.stack) }

// SetColor sets the foreground color.
func (c *Context) SetColor(col Color) { c.cur.foreground = col }

// SetColorChannels sets the foreground color from 3 or 4 channel values.
// Alpha defaults to 255; channels wrap to 8 bits.
func (c *Context) SetColorChannels(ch ...int) error {
	col, err := ColorFromChannels(ch...)
	if err != nil {
		return err
	}
	c.cur.foreground = col
	return nil
}

// Color returns the foreground color.
func (c *Context) Color() Color { return c.cur.foreground }

// SetBackgroundColor sets the background color used by Clear.
func (c *Context) SetBackgroundColor(col Color) { c.cur.background = col }

// SetBackgroundColorChannels sets the background color from 3 or 4 channel values.
func (c *Context) SetBackgroundColorChannels(ch ...int) error {
	col, err := ColorFromChannels(ch...)
	if err != nil {
		return err
	}
	c.cur.background = col
	return nil
}

// BackgroundColor returns the background color.
func (c *Context) BackgroundColor() Color { return c.cur.background }

// Translate sets the translation applied by Rectangle and Draw. The offset
// replaces the previous one; calls do not accumulate.
func (c *Context) Translate(dx, dy int) {
	c.cur.tx, c.cur.ty = dx, dy
}

// Translation returns the current translation.
func (c *Context) Translation() (dx, dy int) {
	return c.cur.tx, c.cur.ty
}

// SetScissor sets the clip rectangle, clamped to the target.
// Drawing outside the clip is discarded; an empty clip discards everything.
func (c *Context) SetScissor(r Rect) {
	c.cur.clip = sanitizeClip(r, c.target.Width(), c.target.Height())
}

// ResetScissor makes the whole target drawable again.
func (c *Context) ResetScissor() {
	c.cur.clip = c.target.Rect()
}

// Scissor returns the current clip rectangle.
func (c *Context) Scissor() Rect { return c.cur.clip }

// SetFont sets the font used by Print, Printf and TextWidth. nil removes it.
func (c *Context) SetFont(f *Font) { c.cur.font = f }

// Font returns the current font, or nil. The font is shared, not copied.
func (c *Context) Font() *Font { return c.cur.font }

// Clear fills the entire target with the background color, ignoring the clip.
func (c *Context) Clear() {
	c.target.Fill(c.cur.background)
}
