// Package blend implements the per-pixel compositing used by the painter.
//
// Pixels are packed 32-bit ARGB words with straight (non-premultiplied)
// alpha. All arithmetic is 8-bit fixed point: channel products are divided
// by 255 with Alvy Ray Smith's shift formula instead of an integer divide.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255 without a division instruction.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// The result equals x/255 (truncated) for every product of two 8-bit values
// and sums of such products bounded by 255*255.
func div255(x uint32) uint32 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two channel values and scales the product back to 0-255.
func mulDiv255(a, b uint32) uint32 {
	return div255(a * b)
}
