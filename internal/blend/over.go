package blend

// Pack builds a packed ARGB word from its channels.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a packed ARGB word into its channels.
func Unpack(c uint32) (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Over composites src over dst with straight alpha.
//
// Each color channel is src*a/255 + dst*(255-a)/255, computed on the summed
// products so that a == 255 yields src exactly. The resulting alpha is
// a + dstA*(255-a)/255. A fully transparent source returns dst unchanged.
func Over(src, dst uint32) uint32 {
	sa := src >> 24
	switch sa {
	case 0:
		return dst
	case 255:
		return src
	}
	inv := 255 - sa

	r := div255(((src>>16)&0xff)*sa + ((dst>>16)&0xff)*inv)
	g := div255(((src>>8)&0xff)*sa + ((dst>>8)&0xff)*inv)
	b := div255((src&0xff)*sa + (dst&0xff)*inv)
	a := sa + mulDiv255(dst>>24, inv)

	return a<<24 | r<<16 | g<<8 | b
}

// OverSpan composites src over dst element by element.
// Both slices must have the same length; extra elements in dst are ignored.
func OverSpan(dst, src []uint32) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	dst = dst[:n]
	for i, s := range src[:n] {
		switch s >> 24 {
		case 0:
		case 255:
			dst[i] = s
		default:
			dst[i] = Over(s, dst[i])
		}
	}
}
