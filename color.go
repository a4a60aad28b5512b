package painter

import (
	"fmt"
	"image/color"
)

// Color is a packed 32-bit ARGB color with straight (non-premultiplied)
// alpha: (a<<24) | (r<<16) | (g<<8) | b.
type Color uint32

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = NewColor(0, 0, 0, 0)
)

// NewColor packs four channel values into a Color.
// Each channel keeps only its low 8 bits, so out-of-range values wrap
// (256 becomes 0, -1 becomes 255) instead of saturating.
func NewColor(r, g, b, a int) Color {
	return Color(uint32(a&0xff)<<24 | uint32(r&0xff)<<16 | uint32(g&0xff)<<8 | uint32(b&0xff))
}

// RGB creates an opaque color from red, green and blue channels.
func RGB(r, g, b int) Color {
	return NewColor(r, g, b, 255)
}

// ColorFromChannels packs a 3 or 4 element channel sequence (r, g, b[, a]).
// A missing alpha defaults to 255. Any other count is ErrInvalidArgument.
func ColorFromChannels(ch ...int) (Color, error) {
	switch len(ch) {
	case 3:
		return NewColor(ch[0], ch[1], ch[2], 255), nil
	case 4:
		return NewColor(ch[0], ch[1], ch[2], ch[3]), nil
	default:
		return 0, fmt.Errorf("painter: color requires 3 or 4 channels, %d given: %w", len(ch), ErrInvalidArgument)
	}
}

// ColorOf converts any color.Color to a packed straight-alpha Color.
func ColorOf(c color.Color) Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColor(int(n.R), int(n.G), int(n.B), int(n.A))
}

// Channels returns the red, green, blue and alpha channels.
func (c Color) Channels() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// RGBA implements color.Color. The returned values are alpha-premultiplied
// and scaled to 16 bits, as the color.Color contract requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb, ca := c.Channels()
	return color.NRGBA{R: cr, G: cg, B: cb, A: ca}.RGBA()
}

// String returns the color as #RRGGBBAA.
func (c Color) String() string {
	r, g, b, a := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without '#'.
// Unparseable input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return NewColor(int(r), int(g), int(b), int(a))
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}
