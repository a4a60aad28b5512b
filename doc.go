// Package painter is a software 2D painter for packed ARGB pixel buffers.
//
// # Overview
//
// painter draws points, lines, rectangles, blitted images and bitmap-font
// text into a [Surface] under a stack of drawing states. It targets frame
// based render loops that redraw a fixed-size framebuffer every frame.
//
// # Quick Start
//
//	fb, _ := painter.NewSurface(320, 240)
//	c := painter.NewContext(fb)
//
//	c.SetColor(painter.RGB(255, 0, 0))
//	c.Line(0, 0, 319, 239)
//	_ = c.Rectangle(painter.ModeFill, 10, 10, 50, 20)
//
//	_ = fb.SavePNG("frame.png")
//
// # State
//
// A [Context] holds the current foreground and background colors, clip
// rectangle, translation and font. Push saves a copy of that state and Pop
// restores it; Pop at the bottom of the stack does nothing.
//
// Translation is applied by Rectangle and Draw only. Point, Line and Print
// take final target coordinates.
//
// # Pixels
//
// Colors are packed 32-bit words (a<<24 | r<<16 | g<<8 | b) with straight
// alpha. Fills and lines write the foreground color as is; image and text
// blits are alpha blended with 8-bit fixed-point arithmetic. There is no
// anti-aliasing.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package painter

// Version is the current version of the library.
const Version = "0.1.0"
